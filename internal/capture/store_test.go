package capture

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func rec(msg string) Record {
	return Record{Level: LevelInfo, Source: "test", Message: msg, Time: time.Now()}
}

func messages(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Message
	}
	return out
}

func TestStoreAppendWithinCapacity(t *testing.T) {
	s := NewStore(5)

	s.Append(rec("a"))
	s.Append(rec("b"))
	s.Append(rec("c"))

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	got := messages(s.Snapshot(0))
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStoreEvictsOldestFirst(t *testing.T) {
	// After M appends to a capacity-N store, the store holds
	// min(M, N) records: exactly the last min(M, N), in order.
	const capN = 4
	const appends = 11

	s := NewStore(capN)
	for i := 0; i < appends; i++ {
		s.Append(rec(fmt.Sprintf("m%d", i)))
	}

	if s.Len() != capN {
		t.Fatalf("Len() = %d, want %d", s.Len(), capN)
	}
	got := messages(s.Snapshot(0))
	for i := 0; i < capN; i++ {
		want := fmt.Sprintf("m%d", appends-capN+i)
		if got[i] != want {
			t.Errorf("record %d = %q, want %q", i, got[i], want)
		}
	}
}

func TestStoreSnapshotSkip(t *testing.T) {
	t.Run("viewport skip yields trailing records", func(t *testing.T) {
		s := NewStore(1000)
		for i := 0; i < 1000; i++ {
			s.Append(rec(fmt.Sprintf("m%d", i)))
		}

		// A 20-row viewport skips len-20 records.
		got := s.Snapshot(980)
		if len(got) != 20 {
			t.Fatalf("got %d records, want 20", len(got))
		}
		for i, r := range got {
			want := fmt.Sprintf("m%d", 980+i)
			if r.Message != want {
				t.Errorf("record %d = %q, want %q", i, r.Message, want)
			}
		}
	})

	t.Run("skip past end returns nil", func(t *testing.T) {
		s := NewStore(10)
		s.Append(rec("a"))
		if got := s.Snapshot(5); got != nil {
			t.Errorf("Snapshot(5) = %v, want nil", got)
		}
	})

	t.Run("negative skip treated as zero", func(t *testing.T) {
		s := NewStore(10)
		s.Append(rec("a"))
		if got := s.Snapshot(-3); len(got) != 1 {
			t.Errorf("Snapshot(-3) returned %d records, want 1", len(got))
		}
	})

	t.Run("empty store", func(t *testing.T) {
		s := NewStore(10)
		if got := s.Snapshot(0); got != nil {
			t.Errorf("Snapshot(0) on empty store = %v, want nil", got)
		}
	})
}

func TestStoreSnapshotIsPointInTime(t *testing.T) {
	s := NewStore(3)
	s.Append(rec("a"))
	s.Append(rec("b"))

	snap := s.Snapshot(0)

	// Mutations after the snapshot must not change it.
	s.Append(rec("c"))
	s.Append(rec("d"))

	if len(snap) != 2 {
		t.Fatalf("snapshot length changed to %d", len(snap))
	}
	if snap[0].Message != "a" || snap[1].Message != "b" {
		t.Errorf("snapshot mutated: %v", messages(snap))
	}
}

func TestStoreDefaultCapacity(t *testing.T) {
	if got := NewStore(0).Cap(); got != DefaultCapacity {
		t.Errorf("NewStore(0).Cap() = %d, want %d", got, DefaultCapacity)
	}
	if got := NewStore(-1).Cap(); got != DefaultCapacity {
		t.Errorf("NewStore(-1).Cap() = %d, want %d", got, DefaultCapacity)
	}
}

func TestStoreConcurrentAppendAndSnapshot(t *testing.T) {
	s := NewStore(64)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Append(rec(fmt.Sprintf("w%d-%d", w, i)))
			}
		}(w)
	}

	// Concurrent reader: every snapshot must be well formed.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			snap := s.Snapshot(0)
			if len(snap) > s.Cap() {
				t.Errorf("snapshot longer than capacity: %d", len(snap))
				return
			}
			for _, r := range snap {
				if r.Message == "" {
					t.Error("observed torn record")
					return
				}
			}
		}
	}()

	wg.Wait()

	if s.Len() != s.Cap() {
		t.Errorf("Len() = %d after overflow, want %d", s.Len(), s.Cap())
	}
}

func TestStorePerStoreOrderPreserved(t *testing.T) {
	// A single writer's records appear in append order even after
	// wrap-around.
	s := NewStore(8)
	for i := 0; i < 30; i++ {
		s.Append(rec(fmt.Sprintf("m%02d", i)))
	}
	snap := s.Snapshot(0)
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Message >= snap[i].Message {
			t.Fatalf("order violated: %q before %q", snap[i-1].Message, snap[i].Message)
		}
	}
}
