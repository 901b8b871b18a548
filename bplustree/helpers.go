package bplustree

// insertAt inserts elem into slice at index i, shifting later elements
// right by one. Mirrors the teacher's generic `insert` helper from
// storage_engine/access/indexfile_manager/bplustree/binary_search.go.
func insertAt[T any](slice []T, i int, elem T) []T {
	slice = append(slice, elem)
	copy(slice[i+1:], slice[i:])
	slice[i] = elem
	return slice
}
