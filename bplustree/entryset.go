package bplustree

import "IndexKit/internal/mapkit"

// EntrySet returns every (key, value) pair in the map, in ascending key
// order, obtained by walking the leaf chain from the leftmost leaf — the
// same traversal the teacher's Iterator performs in iterator.go.
func (t *BPlusTreeMap[K, V]) EntrySet() []mapkit.Entry[K, V] {
	var out []mapkit.Entry[K, V]
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.getNode(leaf.next) {
		for i := range leaf.keys {
			out = append(out, mapkit.Entry[K, V]{Key: leaf.keys[i], Value: leaf.values[i]})
		}
	}
	return out
}

// Keys returns every key in ascending order.
func (t *BPlusTreeMap[K, V]) Keys() []K {
	var out []K
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.getNode(leaf.next) {
		out = append(out, leaf.keys...)
	}
	return out
}

// Values returns every value, ordered by ascending key.
func (t *BPlusTreeMap[K, V]) Values() []V {
	var out []V
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.getNode(leaf.next) {
		out = append(out, leaf.values...)
	}
	return out
}

// Size returns the live key count, obtained by summing leaf key counts
// while walking the leaf chain.
func (t *BPlusTreeMap[K, V]) Size() int {
	n := 0
	for leaf := t.leftmostLeaf(); leaf != nil; leaf = t.getNode(leaf.next) {
		n += len(leaf.keys)
	}
	return n
}

// Range visits every (key, value) pair with lo <= key < hi, in ascending
// order, calling fn for each. Range stops early if fn returns false. It
// is the visitor form SubMap is built on, playing the role of the
// teacher's Iterator (SeekGE/Next) generalized off byte slices.
func (t *BPlusTreeMap[K, V]) Range(lo, hi K, fn func(K, V) bool) {
	leaf := t.findLeaf(lo)
	if leaf == nil {
		return
	}
	i := t.lowerBound(leaf.keys, lo)
	for leaf != nil {
		for ; i < len(leaf.keys); i++ {
			k := leaf.keys[i]
			if !t.less(k, hi) {
				return
			}
			if !fn(k, leaf.values[i]) {
				return
			}
		}
		leaf = t.getNode(leaf.next)
		i = 0
	}
}

// SubMap returns every (key, value) pair with lo <= key < hi, in
// ascending order.
func (t *BPlusTreeMap[K, V]) SubMap(lo, hi K) []mapkit.Entry[K, V] {
	var out []mapkit.Entry[K, V]
	t.Range(lo, hi, func(k K, v V) bool {
		out = append(out, mapkit.Entry[K, V]{Key: k, Value: v})
		return true
	})
	return out
}

// HeadMap returns every (key, value) pair with key < hi, equivalent to
// SubMap(FirstKey(), hi). Returns an empty slice on an empty map.
func (t *BPlusTreeMap[K, V]) HeadMap(hi K) []mapkit.Entry[K, V] {
	lo, err := t.FirstKey()
	if err != nil {
		return nil
	}
	return t.SubMap(lo, hi)
}

// TailMap returns every (key, value) pair with key >= lo, equivalent to
// SubMap(lo, LastKey()) augmented with the (LastKey, value) pair when
// lo <= LastKey. This closed-right-endpoint asymmetry against SubMap's
// half-open range is intentional, per the original spec's Open Questions.
func (t *BPlusTreeMap[K, V]) TailMap(lo K) []mapkit.Entry[K, V] {
	last, err := t.LastKey()
	if err != nil {
		return nil
	}
	out := t.SubMap(lo, last)
	if !t.less(last, lo) {
		if v, ok := t.Get(last); ok {
			out = append(out, mapkit.Entry[K, V]{Key: last, Value: v})
		}
	}
	return out
}
