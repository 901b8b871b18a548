package exthash

import (
	"fmt"
	"strings"
)

// String renders the directory and physical bucket layout for
// diagnostics - not authoritative state, just a human-readable dump for
// the CLI exerciser and test failure messages.
func (m *ExtHashMap[K, V]) String() string {
	var b strings.Builder
	st := m.Stats()
	fmt.Fprintf(&b, "ExtHashMap(slots=%d, dir=%d, depth=%d, buckets=%d, population=%d)\n",
		st.Slots, st.DirectorySize, st.GlobalDepth, st.BucketCount, st.PopulationSize)
	for i, bucket := range m.buckets {
		fmt.Fprintf(&b, "  bucket[%d] nSplit=%d entries=%d\n", i, bucket.nSplit, len(bucket.entries))
	}
	return b.String()
}
