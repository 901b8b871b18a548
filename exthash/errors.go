package exthash

import "errors"

// ErrCapacityOverflow is returned by Put when more than `slots` keys
// collide on the same hash prefix even after the directory has been
// doubled to maxGlobalDepth, so the colliding keys can never be
// separated into different buckets. This is the documented limitation
// from section 7/section 9 of the original spec, surfaced as a fatal
// error rather than splitting forever.
var ErrCapacityOverflow = errors.New("exthash: capacity overflow: keys cannot be separated by further splitting")
