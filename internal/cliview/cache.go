// Package cliview provides a read-through cache for the cmd/ exercisers,
// so a CLI run can report cache hit/miss rates alongside each map's own
// access counter without touching the maps themselves. None of the three
// map packages import this package: caching in front of a Get is a
// presentation-layer concern, not something the single-threaded map
// implementations should carry internally.
//
// Backed by github.com/dgraph-io/ristretto/v2, the teacher's declared but
// previously unused cache dependency.
package cliview

import "github.com/dgraph-io/ristretto/v2"

// Loader fetches (k) from whatever backs the cache on a miss.
type Loader[K comparable, V any] func(K) (V, bool)

// ReadThroughCache wraps a ristretto.Cache in front of a Loader, so
// repeated lookups of the same key skip the underlying map's Get (and its
// access-counter increment) once cached.
type ReadThroughCache[K comparable, V any] struct {
	cache  *ristretto.Cache[K, V]
	loader Loader[K, V]
}

// New builds a ReadThroughCache sized for CLI-scale exercising: ten
// thousand counters and a small cost budget, well beyond anything the
// cmd/ programs insert.
func New[K comparable, V any](loader Loader[K, V]) (*ReadThroughCache[K, V], error) {
	cache, err := ristretto.NewCache(&ristretto.Config[K, V]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ReadThroughCache[K, V]{cache: cache, loader: loader}, nil
}

// Get returns the cached value for k, falling back to the Loader on a
// miss and populating the cache with the loaded result.
func (c *ReadThroughCache[K, V]) Get(k K) (V, bool) {
	if v, ok := c.cache.Get(k); ok {
		return v, true
	}
	v, ok := c.loader(k)
	if ok {
		c.cache.Set(k, v, 1)
		c.cache.Wait()
	}
	return v, ok
}

// Hits returns the number of cache hits observed so far.
func (c *ReadThroughCache[K, V]) Hits() uint64 {
	return c.cache.Metrics.Hits()
}

// Misses returns the number of cache misses observed so far.
func (c *ReadThroughCache[K, V]) Misses() uint64 {
	return c.cache.Metrics.Misses()
}

// Close releases the cache's background goroutines.
func (c *ReadThroughCache[K, V]) Close() {
	c.cache.Close()
}
