package bplustree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

// walkLeafChain returns the keys in every leaf, in chain order, following
// next ids from the leftmost leaf until the chain ends.
func walkLeafChain[V any](t *testing.T, tree *BPlusTreeMap[int, V]) [][]int {
	var out [][]int
	for leaf := tree.leftmostLeaf(); leaf != nil; leaf = tree.getNode(leaf.next) {
		out = append(out, append([]int{}, leaf.keys...))
	}
	return out
}

func leafDepths(t *testing.T, tree *BPlusTreeMap[int, int]) []int {
	var depths []int
	var walk func(id int64, depth int)
	walk = func(id int64, depth int) {
		n := tree.getNode(id)
		if n.kind == nodeLeaf {
			depths = append(depths, depth)
			return
		}
		for _, c := range n.children {
			walk(c, depth+1)
		}
	}
	walk(tree.root, 0)
	return depths
}

func assertAllLeavesSameDepth(t *testing.T, tree *BPlusTreeMap[int, int]) {
	depths := leafDepths(t, tree)
	for _, d := range depths {
		assert.Equal(t, depths[0], d, "all leaves must be at the same depth")
	}
}

func assertInternalSeparatorsAreMinOfRightSubtree(t *testing.T, tree *BPlusTreeMap[int, int]) {
	var minKey func(id int64) int
	minKey = func(id int64) int {
		n := tree.getNode(id)
		if n.kind == nodeLeaf {
			require.NotEmpty(t, n.keys)
			return n.keys[0]
		}
		return minKey(n.children[0])
	}
	var walk func(id int64)
	walk = func(id int64) {
		n := tree.getNode(id)
		if n.kind == nodeLeaf {
			return
		}
		for i, k := range n.keys {
			assert.Equal(t, minKey(n.children[i+1]), k, "separator must equal min key of right subtree")
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(tree.root)
}

func TestBPlusTreeMap_InsertSequentialAndInvariants(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)

	for k := 1; k <= 9; k++ {
		require.NoError(t, tree.Put(k, k*k))
		assertAllLeavesSameDepth(t, tree)
		assertInternalSeparatorsAreMinOfRightSubtree(t, tree)
	}

	v, ok := tree.Get(5)
	require.True(t, ok)
	assert.Equal(t, 25, v)

	first, err := tree.FirstKey()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	last, err := tree.LastKey()
	require.NoError(t, err)
	assert.Equal(t, 9, last)

	sub := tree.SubMap(3, 7)
	require.Len(t, sub, 4)
	wantKeys := []int{3, 4, 5, 6}
	wantVals := []int{9, 16, 25, 36}
	for i, e := range sub {
		assert.Equal(t, wantKeys[i], e.Key)
		assert.Equal(t, wantVals[i], e.Value)
	}

	assert.Equal(t, 9, tree.Size())
}

func TestBPlusTreeMap_DuplicateInsertIsRejected(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)
	for k := 1; k <= 9; k++ {
		require.NoError(t, tree.Put(k, k*k))
	}

	err := tree.Put(4, 999)
	assert.ErrorIs(t, err, ErrDuplicateKey)

	assert.Equal(t, 9, tree.Size())
	v, ok := tree.Get(4)
	require.True(t, ok)
	assert.Equal(t, 16, v)
}

func TestBPlusTreeMap_EmptyMap(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)

	_, ok := tree.Get(42)
	assert.False(t, ok)
	assert.Empty(t, tree.EntrySet())
	assert.Equal(t, 0, tree.Size())

	_, err := tree.FirstKey()
	assert.ErrorIs(t, err, ErrEmptyMap)
	_, err = tree.LastKey()
	assert.ErrorIs(t, err, ErrEmptyMap)
}

func TestBPlusTreeMap_LeafChainAscendingAfterShuffledInsert(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)

	order := []int{13, 2, 17, 9, 1, 20, 4, 11, 6, 19, 3, 15, 8, 10, 18, 5, 7, 16, 12, 14}
	for _, k := range order {
		require.NoError(t, tree.Put(k, k))
	}

	entries := tree.EntrySet()
	require.Len(t, entries, 20)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Key)
	}

	chain := walkLeafChain(t, tree)
	prev := -1
	for _, leaf := range chain {
		for _, k := range leaf {
			assert.Greater(t, k, prev)
			prev = k
		}
	}
}

func TestBPlusTreeMap_HeadAndTailMap(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)
	for k := 1; k <= 9; k++ {
		require.NoError(t, tree.Put(k, k*k))
	}

	head := tree.HeadMap(4)
	require.Len(t, head, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{head[0].Key, head[1].Key, head[2].Key})

	tail := tree.TailMap(7)
	require.Len(t, tail, 3)
	assert.Equal(t, 9, tail[len(tail)-1].Key)
}

func TestBPlusTreeMap_AccessCounter(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)
	for k := 1; k <= 30; k++ {
		require.NoError(t, tree.Put(k, k))
	}

	tree.ResetAccessCount()
	_, _ = tree.Get(15)
	assert.Positive(t, tree.AccessCount())

	returned := tree.ResetAccessCount()
	assert.Positive(t, returned)
	assert.Equal(t, int64(0), tree.AccessCount())
}

func TestBPlusTreeMap_EveryNodeWithinOrderBound(t *testing.T) {
	tree := NewWithOrder[int, int](5, lessInt)
	for k := 0; k < 200; k++ {
		require.NoError(t, tree.Put(k, k))
	}

	var walk func(id int64)
	walk = func(id int64) {
		n := tree.getNode(id)
		assert.LessOrEqual(t, len(n.keys), tree.maxKeys())
		if n.id != tree.root {
			assert.NotEmpty(t, n.keys, "non-root node must not end an insertion with 0 keys")
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(tree.root)
}
