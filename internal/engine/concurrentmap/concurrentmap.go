// Package concurrentmap provides a fixed-bucket, per-bucket-locked map
// keyed by an integer type. It exists to let independent goroutines
// accumulate into disjoint keys without contending on a single global
// lock — the substrate the parallel scorer builds on (see
// internal/engine/rank).
package concurrentmap

import (
	"sort"
	"sync"
)

// Integer constrains the map's key type to Go's built-in integer kinds,
// mirroring the C++ original's static_assert(is_integral_v<Key>).
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type bucket[K Integer, V any] struct {
	mu sync.Mutex
	m  map[K]V
}

// Map is a sharded map from K to V, safe for concurrent use across
// disjoint keys without a global lock.
type Map[K Integer, V any] struct {
	buckets []*bucket[K, V]
}

// New creates a Map with the given number of buckets. count must be >= 1;
// any B >= 1 is correct, a small fixed count (4-16) is sufficient since
// per-document contention on a single bucket is already low.
func New[K Integer, V any](count int) *Map[K, V] {
	if count < 1 {
		count = 1
	}
	buckets := make([]*bucket[K, V], count)
	for i := range buckets {
		buckets[i] = &bucket[K, V]{m: make(map[K]V)}
	}
	return &Map[K, V]{buckets: buckets}
}

func (m *Map[K, V]) bucketFor(k K) *bucket[K, V] {
	return m.buckets[uint64(k)%uint64(len(m.buckets))]
}

// Handle is a scoped, locked reference to a single value slot, standing
// in for the C++ original's Access{lock_guard, Value&}: the owning
// bucket's mutex is held from Access until Release, and Get/Set read and
// write the slot under that lock.
type Handle[K Integer, V any] struct {
	bucket *bucket[K, V]
	key    K
}

// Get returns the slot's current value (the zero value if never set).
func (h *Handle[K, V]) Get() V {
	return h.bucket.m[h.key]
}

// Set overwrites the slot's value.
func (h *Handle[K, V]) Set(v V) {
	h.bucket.m[h.key] = v
}

// Release unlocks the bucket owning this handle. Must be called exactly
// once, on every exit path.
func (h *Handle[K, V]) Release() {
	h.bucket.mu.Unlock()
}

// Access locks the bucket owning k and returns a handle to its value
// slot, inserting the zero value if k is absent. The caller must call
// Handle.Release on every exit path.
func (m *Map[K, V]) Access(k K) *Handle[K, V] {
	b := m.bucketFor(k)
	b.mu.Lock()
	if _, exists := b.m[k]; !exists {
		var zero V
		b.m[k] = zero
	}
	return &Handle[K, V]{bucket: b, key: k}
}

// Erase removes k from the map, if present.
func (m *Map[K, V]) Erase(k K) {
	b := m.bucketFor(k)
	b.mu.Lock()
	delete(b.m, k)
	b.mu.Unlock()
}

// Snapshot merges every bucket into a single ordinary map, locking each
// bucket in turn (never all at once).
func (m *Map[K, V]) Snapshot() map[K]V {
	out := make(map[K]V)
	for _, b := range m.buckets {
		b.mu.Lock()
		for k, v := range b.m {
			out[k] = v
		}
		b.mu.Unlock()
	}
	return out
}

// Keys returns the current keys across all buckets, sorted ascending.
func (m *Map[K, V]) Keys() []K {
	snap := m.Snapshot()
	keys := make([]K, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
