// Package bplustree implements BPlusTreeMap, an in-memory ordered map
// backed by a B+Tree: fixed-fanout nodes, leaf chaining for ordered
// iteration, and split/promote-on-insert. It has no delete and no
// rebalance, matching the original's Non-goals.
//
// The node layout below mirrors the teacher's bplustree/struct.go (a
// NodeType enum, the leaf/internal split, a leaf "next" pointer for the
// sibling chain) but drops the []byte-keyed, page-oriented Pager and
// BufferPool in favor of generics over K, V and the id-addressed arena in
// internal/mapkit, since persistence is an explicit Non-goal here.
package bplustree

import "IndexKit/internal/mapkit"

// DefaultOrder is the maximum fanout used when a caller does not pick one
// explicitly. Must be >= 3; the reference value is 5: a leaf holds up to
// four keys, an internal node routes to up to five children.
const DefaultOrder = 5

type nodeType int

const (
	nodeInternal nodeType = iota
	nodeLeaf
)

// node is addressed by id within the tree's arena; id 0 means "no node"
// (see internal/mapkit.Arena).
type node[K any, V any] struct {
	kind nodeType
	id   int64

	keys []K // len 0..order-1, strictly ascending

	// internal node fields
	children []int64 // len == len(keys)+1

	// leaf node fields
	values []V   // len == len(keys), aligned with keys
	next   int64 // id of the next leaf in ascending key order, or 0
}

// Comparator reports whether a sorts strictly before b. It plays the role
// the teacher's `cmp func(a, b []byte) int` field played on BPlusTree,
// narrowed to a boolean "less" as is idiomatic for ordered Go containers.
type Comparator[K any] func(a, b K) bool

// BPlusTreeMap is an ordered map from K to V implemented as a B+Tree. It
// is not safe for concurrent use: the original spec's Concurrency &
// Resource Model calls for no internal synchronization, so callers must
// serialize access themselves.
type BPlusTreeMap[K any, V any] struct {
	order int
	less  Comparator[K]

	arena mapkit.Arena[node[K, V]]
	root  int64 // id of the root node; never 0 once constructed

	counter mapkit.AccessCounter
}

// New constructs an empty BPlusTreeMap using DefaultOrder and the supplied
// comparator.
func New[K any, V any](less Comparator[K]) *BPlusTreeMap[K, V] {
	return NewWithOrder[K, V](DefaultOrder, less)
}

// NewWithOrder constructs an empty BPlusTreeMap with an explicit order
// (fanout). Values below 3 are raised to 3, the minimum order for which
// splitting terminates.
func NewWithOrder[K any, V any](order int, less Comparator[K]) *BPlusTreeMap[K, V] {
	if order < 3 {
		order = 3
	}
	t := &BPlusTreeMap[K, V]{order: order, less: less}
	root := &node[K, V]{kind: nodeLeaf}
	root.id = t.arena.Alloc(root)
	t.root = root.id
	return t
}

func (t *BPlusTreeMap[K, V]) maxKeys() int {
	return t.order - 1
}

// AccessCount returns the current access-counter value: the number of
// nodes visited by findLeaf descents (Get, Contains and the range queries)
// since construction or the last Reset.
func (t *BPlusTreeMap[K, V]) AccessCount() int64 {
	return t.counter.Count()
}

// ResetAccessCount zeroes the access counter and returns the value it
// held.
func (t *BPlusTreeMap[K, V]) ResetAccessCount() int64 {
	return t.counter.Reset()
}

func (t *BPlusTreeMap[K, V]) getNode(id int64) *node[K, V] {
	return t.arena.Get(id)
}
