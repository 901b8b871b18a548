package linhash

import (
	"fmt"
	"strings"
)

// String renders the per-chain layout: one line per home bucket, with
// chain length and entry count, for diagnostics and test failure
// messages.
func (m *LinHashMap[K, V]) String() string {
	var b strings.Builder
	st := m.Stats()
	fmt.Fprintf(&b, "LinHashMap(slots=%d, mod1=%d, mod2=%d, split=%d, homeBuckets=%d, population=%d)\n",
		st.Slots, st.Mod1, st.Mod2, st.Split, st.HomeBuckets, st.PopulationSize)
	for i, home := range m.hTable {
		chainLen := 0
		entries := 0
		for cur := home; cur != nil; cur = cur.next {
			chainLen++
			entries += len(cur.entries)
		}
		fmt.Fprintf(&b, "  home[%d] chain=%d entries=%d\n", i, chainLen, entries)
	}
	return b.String()
}
