package exthash

import "IndexKit/internal/mapkit"

// EntrySet enumerates every distinct bucket's contents, scanning the
// physical store rather than the (aliasing) directory, per section 4.2.
func (m *ExtHashMap[K, V]) EntrySet() []mapkit.Entry[K, V] {
	var out []mapkit.Entry[K, V]
	for _, b := range m.buckets {
		out = append(out, b.entries...)
	}
	return out
}

// Size returns SLOTS x number of distinct buckets: nominal capacity, not
// population, per section 4.2 and section 9's Open Questions.
func (m *ExtHashMap[K, V]) Size() int {
	return m.slots * len(m.buckets)
}

// Stats reports the map's current shape, styled on
// gostonefire-filehashmap's HashMapStat/HashMapInfo structs.
type Stats struct {
	Slots          int
	BucketCount    int
	DirectorySize  int
	GlobalDepth    int
	PopulationSize int
}

// Stats returns a snapshot of the map's current shape.
func (m *ExtHashMap[K, V]) Stats() Stats {
	pop := 0
	for _, b := range m.buckets {
		pop += len(b.entries)
	}
	return Stats{
		Slots:          m.slots,
		BucketCount:    len(m.buckets),
		DirectorySize:  len(m.dir),
		GlobalDepth:    m.globalDepth,
		PopulationSize: pop,
	}
}
