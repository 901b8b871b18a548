package bplustree

import (
	"fmt"
	"strings"
)

// String renders the tree's order, size and leaf chain (each leaf's id and
// keys) for diagnostics, the generic-map counterpart of the teacher's
// bplustree.InspectIndexFile. Internal nodes are not rendered.
// It is not authoritative state (callers should use EntrySet/Size for
// that) - just a human-readable dump for the CLI exercisers and test
// failure messages.
func (t *BPlusTreeMap[K, V]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BPlusTreeMap(order=%d, size=%d)\n", t.order, t.Size())
	leafNo := 0
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.getNode(leaf.next) {
		fmt.Fprintf(&b, "  leaf[%d] id=%d keys=%v\n", leafNo, leaf.id, leaf.keys)
		leafNo++
	}
	return b.String()
}
