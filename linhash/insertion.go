package linhash

import "IndexKit/internal/mapkit"

// Put inserts (k, v), per section 4.3's five-step algorithm:
//  1. locate the target chain via targetIndex;
//  2. append to the first bucket in the chain with a free slot;
//  3. if none has room, append a new overflow bucket to the chain;
//  4. on that overflow, split the bucket at index `split`;
//  5. when `split` reaches mod1, a round completes.
//
// Duplicate keys are not rejected: section 4.3 names no duplicate-key
// error, unlike bplustree.Put.
func (m *LinHashMap[K, V]) Put(k K, v V) {
	i := m.targetIndex(k)
	entry := mapkit.Entry[K, V]{Key: k, Value: v}

	tail := m.hTable[i]
	for {
		if len(tail.entries) < m.slots {
			tail.entries = append(tail.entries, entry)
			return
		}
		if tail.next == nil {
			break
		}
		tail = tail.next
	}

	tail.next = &bucket[K, V]{entries: []mapkit.Entry[K, V]{entry}}
	m.splitAt(m.split)
}

// splitAt performs steps 4 and 5 against home bucket index `at`.
func (m *LinHashMap[K, V]) splitAt(at int) {
	old := m.hTable[at]
	var scratch []mapkit.Entry[K, V]
	for b := old; b != nil; b = b.next {
		scratch = append(scratch, b.entries...)
	}

	m.hTable[at] = &bucket[K, V]{}
	m.hTable = append(m.hTable, &bucket[K, V]{})
	m.split++

	// Complete the round before reinserting, so a split triggered by one of
	// the reinsertions starts from a split pointer below mod1.
	if m.split == m.mod1 {
		m.split = 0
		m.mod1 = m.mod2
		m.mod2 = m.mod1 * 2
	}

	for _, e := range scratch {
		m.Put(e.Key, e.Value)
	}
}
