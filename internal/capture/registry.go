package capture

import "sync"

// Registry is the ordered set of sources the operator has opted to
// track individually. Registering a source binds a secondary Store to
// it; every captured event whose normalized source matches then fans
// out to that store as well as the primary.
//
// The registry is append-only for the process lifetime: there is no
// deregistration, and a tracked source costs at most one store's worth
// of records. Registration order is preserved so selection controls
// can present sources in the order the operator added them.
type Registry struct {
	mu       sync.RWMutex
	order    []string
	stores   map[string]*Store
	capacity int // capacity for stores created by Register
}

// NewRegistry returns an empty registry whose secondary stores are
// created with the given capacity. Non-positive capacities fall back
// to DefaultCapacity.
func NewRegistry(capacity int) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Registry{
		stores:   make(map[string]*Store),
		capacity: capacity,
	}
}

// Register adds source to the set and binds a new secondary store to
// it. Registering an already-tracked source is a no-op returning the
// existing store.
func (r *Registry) Register(source string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st, ok := r.stores[source]; ok {
		return st
	}
	st := NewStore(r.capacity)
	r.stores[source] = st
	r.order = append(r.order, source)
	return st
}

// List returns the tracked sources in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// StoreFor returns the secondary store bound to source, if any. It is
// called on every captured event to decide routing, hence the
// read-biased lock.
func (r *Registry) StoreFor(source string) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.stores[source]
	return st, ok
}

// Len reports the number of tracked sources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
