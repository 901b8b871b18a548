package bplustree

import "errors"

// ErrDuplicateKey is returned by Put when the key already exists in the
// tree. The tree is left completely unmodified; this is the idiomatic Go
// rendering of section 7's "logs and returns without modification" — the
// map itself stays silent, and it is the caller's choice whether to log.
var ErrDuplicateKey = errors.New("bplustree: duplicate key")

// ErrEmptyMap is returned by FirstKey and LastKey when the tree holds no
// entries, a conservative strengthening of section 7's "undefined result"
// into a checkable error rather than an undefined crash.
var ErrEmptyMap = errors.New("bplustree: map is empty")
