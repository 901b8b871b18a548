// Package hashkey supplies default Hasher implementations for the
// extendible and linear hash maps. A Hasher is deliberately a single
// function rather than the multi-method interface
// gostonefire-filehashmap/interfaces.HashAlgorithm exposes (that interface
// also carries probing-sequence and table-size concerns this spec has no
// use for, since both ExtHashMap and LinHashMap address buckets through a
// directory/chain rather than open-addressing probes): one stable integer
// hash per key is all section 3 asks for.
package hashkey

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher produces a stable, uniformly-distributed 64-bit hash for a key.
// Implementations must be pure functions of their input: the maps assume
// hash(k) never changes for a key already inserted (section 5's "callers must
// not mutate keys in ways that change their hash").
type Hasher[K any] func(K) uint64

// String returns a Hasher for string keys, backed by xxhash - the same
// hash primitive ristretto (a transitive dependency already present in
// go.mod) uses internally, promoted here to a direct, explicit dependency.
func String() Hasher[string] {
	return func(k string) uint64 {
		return xxhash.Sum64String(k)
	}
}

// Int returns a Hasher for any signed integer key kind, formatting the
// value and hashing its decimal representation. This keeps the hash
// distribution independent of the integer's bit width and sign
// representation, at the cost of a small allocation per hash - acceptable
// for an in-memory index library exercised at the scale described in section 8.
func Int[K int | int8 | int16 | int32 | int64]() Hasher[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(fmt.Sprintf("%d", int64(k)))
	}
}

// Uint returns a Hasher for any unsigned integer key kind.
func Uint[K uint | uint8 | uint16 | uint32 | uint64]() Hasher[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(fmt.Sprintf("%d", uint64(k)))
	}
}

// Bytes returns a Hasher for []byte keys.
func Bytes() Hasher[[]byte] {
	return func(k []byte) uint64 {
		return xxhash.Sum64(k)
	}
}
