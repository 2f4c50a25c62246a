package capture

import "sync"

// DefaultCapacity is the record capacity of a store when none is
// configured.
const DefaultCapacity = 1000

// Store is a fixed-capacity, thread-safe buffer of Records with strict
// FIFO eviction. Insertion order is the only ordering; records are
// never reordered by severity or time. A full store never fails an
// append, it evicts the oldest record first.
//
// Stores are created once and live for the process lifetime; natural
// eviction is the only way records leave.
type Store struct {
	mu      sync.Mutex
	records []Record // ring storage, len == capacity once allocated
	head    int      // index of the oldest record
	size    int      // current record count
}

// NewStore returns an empty store holding at most capacity records.
// Non-positive capacities fall back to DefaultCapacity.
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{records: make([]Record, capacity)}
}

// Append inserts r at the tail, evicting the oldest record first when
// the store is full. It contends only on this store's own lock.
func (s *Store) Append(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	capN := len(s.records)
	tail := (s.head + s.size) % capN
	s.records[tail] = r
	if s.size == capN {
		// Full: the slot we just wrote was the head. Advance it.
		s.head = (s.head + 1) % capN
		return
	}
	s.size++
}

// Snapshot returns the stored records in insertion order, skipping the
// first skip records. The result is a copy taken under the store's
// lock: later appends never alter a snapshot already handed out, and
// no snapshot can observe a torn eviction.
//
// Callers showing only the most recent records that fit a viewport
// pass skip = max(0, Len() - height).
func (s *Store) Snapshot(skip int) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if skip < 0 {
		skip = 0
	}
	if skip >= s.size {
		return nil
	}
	n := s.size - skip
	out := make([]Record, n)
	capN := len(s.records)
	for i := 0; i < n; i++ {
		out[i] = s.records[(s.head+skip+i)%capN]
	}
	return out
}

// Len reports the current record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

// Cap reports the store's fixed capacity.
func (s *Store) Cap() int {
	return len(s.records)
}
