package bplustree

// findLeaf descends from the root to the leaf that must hold key if it is
// present, incrementing the access counter once per node visited (the
// root included). At each internal node it selects the first child whose
// separator key strictly exceeds key, else the rightmost child — the same
// "lowerBound"-style descent the teacher's FindLeaf performs in
// find_leaf.go, generalized from []byte to K via the comparator.
func (t *BPlusTreeMap[K, V]) findLeaf(key K) *node[K, V] {
	id := t.root
	for {
		n := t.getNode(id)
		if n == nil {
			return nil
		}
		t.counter.Inc()
		if n.kind == nodeLeaf {
			return n
		}
		i := t.firstGreater(n.keys, key)
		id = n.children[i]
	}
}

// firstGreater returns the index of the first key in keys strictly
// greater than target, or len(keys) if none is. Because internal
// separators equal the minimum key of their right subtree, a key equal to
// a separator must route right, so this uses strict "<" against target on
// the candidate side (i.e. keys[i] > target), matching section 4.1's
// tie-break rule.
func (t *BPlusTreeMap[K, V]) firstGreater(keys []K, target K) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.less(target, keys[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// lowerBound returns the index of the first key in keys that is >=
// target, i.e. the first position target could be inserted at or found
// at to keep keys sorted.
func (t *BPlusTreeMap[K, V]) lowerBound(keys []K, target K) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if t.less(keys[mid], target) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Get returns the value stored for key, and whether it was found.
// It increments the access counter once per node visited, via findLeaf.
func (t *BPlusTreeMap[K, V]) Get(key K) (V, bool) {
	leaf := t.findLeaf(key)
	if leaf == nil {
		var zero V
		return zero, false
	}
	i := t.lowerBound(leaf.keys, key)
	if i < len(leaf.keys) && !t.less(key, leaf.keys[i]) && !t.less(leaf.keys[i], key) {
		return leaf.values[i], true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present, without returning its value.
func (t *BPlusTreeMap[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}
