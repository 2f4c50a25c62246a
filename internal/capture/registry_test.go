package capture

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistryRegister(t *testing.T) {
	t.Run("creates a store on first registration", func(t *testing.T) {
		r := NewRegistry(50)

		st := r.Register("net")
		if st == nil {
			t.Fatal("Register returned nil store")
		}
		if st.Cap() != 50 {
			t.Errorf("secondary store capacity = %d, want 50", st.Cap())
		}

		got, ok := r.StoreFor("net")
		if !ok {
			t.Fatal("StoreFor did not find registered source")
		}
		if got != st {
			t.Error("StoreFor returned a different store than Register")
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		r := NewRegistry(0)

		first := r.Register("db")
		second := r.Register("db")

		if first != second {
			t.Error("re-registration created a new store")
		}
		if r.Len() != 1 {
			t.Errorf("Len() = %d after duplicate registration, want 1", r.Len())
		}
		if got := r.List(); len(got) != 1 || got[0] != "db" {
			t.Errorf("List() = %v, want [db]", got)
		}
	})
}

func TestRegistryListPreservesOrder(t *testing.T) {
	r := NewRegistry(0)
	for _, src := range []string{"net", "ui", "db"} {
		r.Register(src)
	}
	r.Register("net") // duplicate must not reorder

	got := r.List()
	want := []string{"net", "ui", "db"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryStoreForUnknown(t *testing.T) {
	r := NewRegistry(0)
	if _, ok := r.StoreFor("ghost"); ok {
		t.Error("StoreFor found a source that was never registered")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry(16)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				r.Register(fmt.Sprintf("src%d", i%10))
				r.StoreFor("src0")
				r.List()
			}
		}(w)
	}
	wg.Wait()

	if r.Len() != 10 {
		t.Errorf("Len() = %d, want 10", r.Len())
	}
}
