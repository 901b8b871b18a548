// Package linhash implements LinHashMap, an in-memory unordered map using
// linear hashing: no directory, incremental bucket splitting driven by a
// split pointer, and overflow chains off each home bucket.
//
// The chained-bucket shape (a home bucket plus a linked list of overflow
// buckets, split advancing a single pointer through the home buckets) is
// grounded on the chained-bucket structure documented at length in
// other_examples/goshawkdb-collections__linearhash.go, and the
// entry/bucket naming follows gostonefire-filehashmap's
// internal/model.Bucket{Records []Record, HasOverflow}, generalized to
// generics over K, V.
package linhash

import (
	"IndexKit/internal/hashkey"
	"IndexKit/internal/mapkit"
)

// DefaultSlots is the fixed per-bucket capacity used when a caller does
// not pick one explicitly. The spec's reference value is 4.
const DefaultSlots = 4

// Hasher is re-exported from internal/hashkey so callers constructing a
// LinHashMap don't need to import two packages for one type.
type Hasher[K any] = hashkey.Hasher[K]

// bucket holds up to `slots` entries and a chain pointer to the next
// overflow bucket, or nil at the end of the chain.
type bucket[K any, V any] struct {
	entries []mapkit.Entry[K, V]
	next    *bucket[K, V]
}

// LinHashMap is an unordered map from K to V using linear hashing. It is
// not safe for concurrent use.
type LinHashMap[K any, V any] struct {
	slots int
	hash  Hasher[K]
	eq    func(K, K) bool

	hTable []*bucket[K, V] // home buckets, indices 0..len(hTable)-1
	mod1   int             // current round modulus
	mod2   int             // mod1 * 2
	split  int             // next home bucket due to be split, 0 <= split < mod1

	counter mapkit.AccessCounter
}

// New constructs a LinHashMap with DefaultSlots-capacity buckets.
//
//   - initSize is used directly as mod1 (no rounding), per section 6's
//     constructor contract; mod2 starts at 2*initSize.
func New[K any, V any](initSize int, eq func(K, K) bool, hash Hasher[K]) *LinHashMap[K, V] {
	return NewWithSlots[K, V](DefaultSlots, initSize, eq, hash)
}

// NewWithSlots is New with an explicit per-bucket capacity.
func NewWithSlots[K any, V any](slots, initSize int, eq func(K, K) bool, hash Hasher[K]) *LinHashMap[K, V] {
	if slots < 1 {
		slots = DefaultSlots
	}
	if initSize < 1 {
		initSize = 1
	}
	m := &LinHashMap[K, V]{
		slots:  slots,
		hash:   hash,
		eq:     eq,
		mod1:   initSize,
		mod2:   initSize * 2,
		hTable: make([]*bucket[K, V], initSize),
	}
	for i := range m.hTable {
		m.hTable[i] = &bucket[K, V]{}
	}
	return m
}

// AccessCount returns the current access-counter value.
func (m *LinHashMap[K, V]) AccessCount() int64 {
	return m.counter.Count()
}

// ResetAccessCount zeroes the access counter and returns the value it
// held.
func (m *LinHashMap[K, V]) ResetAccessCount() int64 {
	return m.counter.Reset()
}

// targetIndex computes the chain index for k under the current split
// state, per section 4.3: h1 = hash(k) mod mod1; if h1 < split then
// h1 <- hash(k) mod mod2.
func (m *LinHashMap[K, V]) targetIndex(k K) int {
	h := m.hash(k)
	i := int(h % uint64(m.mod1))
	if i < m.split {
		i = int(h % uint64(m.mod2))
	}
	return i
}
