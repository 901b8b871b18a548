// Package exthash implements ExtHashMap, an in-memory unordered map using
// extendible hashing: a directory of bucket references, doubled in size
// whenever a bucket whose local depth has caught up to the directory's
// global depth overflows.
//
// The bucket/record shape is modeled on gostonefire-filehashmap's
// internal/model.Bucket{Records []Record} - the closest sibling repo in
// the retrieval pack, also a hash-bucket library - generalized from fixed
// []byte records to generics over K, V.
package exthash

import (
	"IndexKit/internal/hashkey"
	"IndexKit/internal/mapkit"
)

// DefaultSlots is the fixed per-bucket capacity used when a caller does
// not pick one explicitly. The spec's reference value is 4.
const DefaultSlots = 4

// maxGlobalDepth bounds directory doubling. Beyond this, a bucket that
// still cannot be split cleanly is treated as a pathological collision
// (section 7's CapacityOverflow) rather than doubled forever.
const maxGlobalDepth = 24

// Hasher is re-exported from internal/hashkey so callers constructing an
// ExtHashMap don't need to import two packages for one type.
type Hasher[K any] = hashkey.Hasher[K]

// bucket holds up to `slots` entries and the number of times this
// bucket's lineage has split (its local-split counter).
type bucket[K any, V any] struct {
	entries []mapkit.Entry[K, V]
	nSplit  int
}

func (b *bucket[K, V]) full(slots int) bool {
	return len(b.entries) >= slots
}

func (b *bucket[K, V]) indexOf(k K, eq func(K, K) bool) int {
	for i, e := range b.entries {
		if eq(e.Key, k) {
			return i
		}
	}
	return -1
}

// ExtHashMap is an unordered map from K to V using extendible hashing. It
// is not safe for concurrent use.
type ExtHashMap[K any, V any] struct {
	slots int
	hash  Hasher[K]
	eq    func(K, K) bool

	initDepth   int // D0 = log2(initial directory size)
	globalDepth int // D = log2(len(dir))

	dir     []*bucket[K, V] // logical, length 2^globalDepth, aliasing allowed
	buckets []*bucket[K, V] // physical store of distinct buckets

	counter mapkit.AccessCounter
}

// New constructs an ExtHashMap with DefaultSlots-capacity buckets, an
// equality function for K, and a hash function for K.
//
//   - initSize is the theoretical initial directory size; it is rounded up
//     to the next power of two, per section 6's constructor contract.
func New[K any, V any](initSize int, eq func(K, K) bool, hash Hasher[K]) *ExtHashMap[K, V] {
	return NewWithSlots[K, V](DefaultSlots, initSize, eq, hash)
}

// NewWithSlots is New with an explicit per-bucket capacity.
func NewWithSlots[K any, V any](slots, initSize int, eq func(K, K) bool, hash Hasher[K]) *ExtHashMap[K, V] {
	if slots < 1 {
		slots = DefaultSlots
	}
	if initSize < 1 {
		initSize = 1
	}
	depth := log2Ceil(initSize)
	mod := 1 << depth

	m := &ExtHashMap[K, V]{
		slots:       slots,
		hash:        hash,
		eq:          eq,
		initDepth:   depth,
		globalDepth: depth,
		dir:         make([]*bucket[K, V], mod),
		buckets:     make([]*bucket[K, V], 0, mod),
	}
	for i := range m.dir {
		b := &bucket[K, V]{}
		m.dir[i] = b
		m.buckets = append(m.buckets, b)
	}
	return m
}

// log2Ceil returns the smallest d such that 1<<d >= n.
func log2Ceil(n int) int {
	d := 0
	for (1 << d) < n {
		d++
	}
	return d
}

// AccessCount returns the current access-counter value.
func (m *ExtHashMap[K, V]) AccessCount() int64 {
	return m.counter.Count()
}

// ResetAccessCount zeroes the access counter and returns the value it
// held.
func (m *ExtHashMap[K, V]) ResetAccessCount() int64 {
	return m.counter.Reset()
}

func (m *ExtHashMap[K, V]) index(k K) int {
	return int(m.hash(k) % uint64(len(m.dir)))
}
