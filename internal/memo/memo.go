// Package memo provides bounded memoization tables for pure functions.
//
// A Table never evicts individual entries: once it holds Cap entries it is
// cleared wholesale before the next insert. Callers key tables by normalized
// inputs, so a cleared table only costs recomputation.
package memo

import "sync"

// DefaultCap is the entry limit used when a table is created with a cap <= 0.
const DefaultCap = 4096

// Table memoizes values of type V keyed by K.
type Table[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	cap     int
	hits    uint64
	misses  uint64
}

// New creates an empty table holding at most capacity entries.
func New[K comparable, V any](capacity int) *Table[K, V] {
	if capacity <= 0 {
		capacity = DefaultCap
	}

	return &Table[K, V]{
		entries: make(map[K]V),
		cap:     capacity,
	}
}

// Get returns the cached value for key, computing and storing it on a miss.
// compute runs without the table lock held and must be pure.
func (t *Table[K, V]) Get(key K, compute func() V) V {
	t.mu.Lock()
	if v, ok := t.entries[key]; ok {
		t.hits++
		t.mu.Unlock()
		return v
	}
	t.misses++
	t.mu.Unlock()

	v := compute()

	t.mu.Lock()
	if len(t.entries) >= t.cap {
		t.entries = make(map[K]V)
	}
	t.entries[key] = v
	t.mu.Unlock()

	return v
}

// Reset drops every entry.
func (t *Table[K, V]) Reset() {
	t.mu.Lock()
	t.entries = make(map[K]V)
	t.mu.Unlock()
}

// Len returns the number of cached entries.
func (t *Table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Stats reports cache hits and misses since creation.
func (t *Table[K, V]) Stats() (hits, misses uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hits, t.misses
}

// Pair is a two-string key for symmetric or ordered pair caches.
type Pair struct {
	A, B string
}
