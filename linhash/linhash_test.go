package linhash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"IndexKit/internal/hashkey"
)

func eqInt(a, b int) bool { return a == b }

func TestLinHashMap_OddSquares(t *testing.T) {
	m := New[int, int](11, eqInt, hashkey.Int[int]())

	for i := 1; i <= 29; i += 2 {
		m.Put(i, i*i)

		// Invariant: split never exceeds mod1, and mod2 is always 2*mod1.
		assert.Less(t, m.split, m.mod1+1)
		assert.Equal(t, m.mod1*2, m.mod2)
		assert.Equal(t, m.mod1+m.split, len(m.hTable))
	}

	v, ok := m.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = m.Get(3)
	assert.True(t, ok)
	assert.Equal(t, 9, v)

	_, ok = m.Get(4)
	assert.False(t, ok)
}

func TestLinHashMap_AllInsertedKeysAreRetrievable(t *testing.T) {
	m := New[int, int](4, eqInt, hashkey.Int[int]())
	for i := 0; i < 500; i++ {
		m.Put(i, i*i)
	}
	for i := 0; i < 500; i++ {
		v, ok := m.Get(i)
		assert.True(t, ok, "key %d must be retrievable", i)
		assert.Equal(t, i*i, v)
	}
}

func TestLinHashMap_EntrySetAndSize(t *testing.T) {
	m := New[int, int](4, eqInt, hashkey.Int[int]())
	for i := 0; i < 50; i++ {
		m.Put(i, i*2)
	}

	entries := m.EntrySet()
	assert.Len(t, entries, 50)
	assert.Equal(t, m.slots*(m.mod1+m.split), m.Size())
}

func TestLinHashMap_RoundCompletionResetsSplit(t *testing.T) {
	m := New[int, int](2, eqInt, hashkey.Int[int]())
	// Force enough overflow to complete at least one full round.
	for i := 0; i < 40; i++ {
		m.Put(i, i)
	}
	// mod1 starts at 2 and only doubles when a round completes.
	assert.GreaterOrEqual(t, m.mod1, 4)
	assert.Less(t, m.split, m.mod1)
}

func TestLinHashMap_EmptyMap(t *testing.T) {
	m := New[int, int](4, eqInt, hashkey.Int[int]())
	_, ok := m.Get(7)
	assert.False(t, ok)
}

func TestLinHashMap_Contains(t *testing.T) {
	m := New[int, int](4, eqInt, hashkey.Int[int]())
	m.Put(5, 25)
	assert.True(t, m.Contains(5))
	assert.False(t, m.Contains(6))
}

func TestLinHashMap_AccessCounterIncrementsPerBucketVisited(t *testing.T) {
	m := New[int, int](4, eqInt, hashkey.Int[int]())
	m.Put(1, 1)

	m.ResetAccessCount()
	_, _ = m.Get(1)
	_, _ = m.Get(2)
	assert.GreaterOrEqual(t, m.AccessCount(), int64(2))
}
