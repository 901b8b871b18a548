package bplustree

// splitInternal splits an internal node that has just overflowed to
// maxKeys+1 keys / maxKeys+2 children (after a child's promoted key and
// new child id were wedged in by propagateSplit). The median key is
// promoted to the parent and is not duplicated into either half, per
// section 4.1 step 5.
func (t *BPlusTreeMap[K, V]) splitInternal(n *node[K, V]) (K, *node[K, V]) {
	mid := len(n.keys) / 2

	promoted := n.keys[mid]

	rightKeys := append([]K{}, n.keys[mid+1:]...)
	rightChildren := append([]int64{}, n.children[mid+1:]...)

	sibling := &node[K, V]{kind: nodeInternal, keys: rightKeys, children: rightChildren}
	sibling.id = t.arena.Alloc(sibling)

	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]

	return promoted, sibling
}
