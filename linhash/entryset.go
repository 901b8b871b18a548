package linhash

import "IndexKit/internal/mapkit"

// EntrySet enumerates every entry across every home bucket and its
// overflow chain. Order is unspecified.
func (m *LinHashMap[K, V]) EntrySet() []mapkit.Entry[K, V] {
	var out []mapkit.Entry[K, V]
	for _, b := range m.hTable {
		for cur := b; cur != nil; cur = cur.next {
			out = append(out, cur.entries...)
		}
	}
	return out
}

// Size returns the nominal capacity SLOTS*(mod1+split), per section 4.3 -
// not the live population, which EntrySet's length gives.
func (m *LinHashMap[K, V]) Size() int {
	return m.slots * (m.mod1 + m.split)
}

// Stats reports the map's current shape.
type Stats struct {
	Slots          int
	HomeBuckets    int
	Mod1           int
	Mod2           int
	Split          int
	PopulationSize int
}

// Stats returns a snapshot of the map's current shape.
func (m *LinHashMap[K, V]) Stats() Stats {
	pop := 0
	for _, b := range m.hTable {
		for cur := b; cur != nil; cur = cur.next {
			pop += len(cur.entries)
		}
	}
	return Stats{
		Slots:          m.slots,
		HomeBuckets:    len(m.hTable),
		Mod1:           m.mod1,
		Mod2:           m.mod2,
		Split:          m.split,
		PopulationSize: pop,
	}
}
