package exthash

import "IndexKit/internal/mapkit"

// Put inserts (k, v) unconditionally: duplicate detection is not
// required by section 4.2, so a repeated key simply becomes a second
// entry in its bucket and Get returns whichever one the linear bucket
// scan reaches first - "insert; get returns most recent slot linearly
// scanned" is observed behavior, not a prescribed guarantee.
func (m *ExtHashMap[K, V]) Put(k K, v V) error {
	for {
		i := m.index(k)
		b := m.dir[i]

		if !b.full(m.slots) {
			b.entries = append(b.entries, mapkit.Entry[K, V]{Key: k, Value: v})
			return nil
		}

		localDepth := m.initDepth + b.nSplit
		if localDepth >= m.globalDepth {
			if m.globalDepth >= maxGlobalDepth {
				return ErrCapacityOverflow
			}
			m.growDirectory()
		}

		m.splitBucket(b)
		// Loop and recompute i: the directory may have grown, and the
		// target bucket for k has certainly changed.
	}
}

// growDirectory doubles the directory so that dir[j+mod/2] aliases
// dir[j] for every existing slot j, per section 4.2 step 4.
func (m *ExtHashMap[K, V]) growDirectory() {
	old := len(m.dir)
	grown := make([]*bucket[K, V], old*2)
	copy(grown, m.dir)
	copy(grown[old:], m.dir)
	m.dir = grown
	m.globalDepth++
}

// splitBucket splits b into two buckets at b's local depth and
// repoints every directory slot that aliased b, resolving the original
// spec's Open Question about directory consistency under aliasing: every
// aliased slot is rewritten, not just the two slots the literal algorithm
// names, by tracking each bucket's local depth explicitly (initDepth +
// nSplit) and scanning the directory once per split.
func (m *ExtHashMap[K, V]) splitBucket(b *bucket[K, V]) {
	localDepth := m.initDepth + b.nSplit
	lowMod := uint64(1) << uint(localDepth)
	highMod := lowMod * 2

	b1 := &bucket[K, V]{nSplit: b.nSplit + 1}
	b2 := &bucket[K, V]{nSplit: b.nSplit + 1}

	for j := range m.dir {
		if m.dir[j] != b {
			continue
		}
		if uint64(j)%highMod < lowMod {
			m.dir[j] = b1
		} else {
			m.dir[j] = b2
		}
	}

	for _, e := range b.entries {
		h := m.hash(e.Key) % uint64(len(m.dir))
		if h%highMod < lowMod {
			b1.entries = append(b1.entries, e)
		} else {
			b2.entries = append(b2.entries, e)
		}
	}

	m.replaceBucket(b, b1, b2)
}

// replaceBucket swaps b for b1, b2 in the physical bucket store.
func (m *ExtHashMap[K, V]) replaceBucket(b, b1, b2 *bucket[K, V]) {
	out := make([]*bucket[K, V], 0, len(m.buckets)+1)
	for _, cur := range m.buckets {
		if cur != b {
			out = append(out, cur)
		}
	}
	out = append(out, b1, b2)
	m.buckets = out
}
