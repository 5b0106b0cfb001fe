// SPDX-License-Identifier: MIT
// Package score: per-session local score cache.
//
// Concurrency:
//   - Workers call LocalScore concurrently. Each node owns a sync.Map keyed by
//     the sorted parent signature; new entries go in with LoadOrStore, so two
//     workers racing on the same key both end up with the stored value.
//   - Invalidate and InvalidateAll are called by the coordinator between
//     evaluation rounds, never while workers are scoring.

package score

import (
	"context"
	"sync"
	"sync/atomic"
)

// entry is a cached result. Errors are cached too.
type entry struct {
	local Local
	err   error
}

// CacheStats counts lookups since the cache was created.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// Cache memoizes a Function.
type Cache struct {
	fn     Function
	byNode []sync.Map

	hits   atomic.Int64
	misses atomic.Int64
}

var _ Function = (*Cache)(nil)

// NewCache wraps fn.
func NewCache(fn Function) *Cache {
	_ = initMetrics()

	return &Cache{fn: fn, byNode: make([]sync.Map, fn.NumVariables())}
}

// Get is an alias for LocalScore.
func (c *Cache) Get(node int, parents []int) (Local, error) {
	return c.LocalScore(node, parents)
}

// LocalScore returns the cached score of (node, parents), computing and
// storing it on first use.
func (c *Cache) LocalScore(node int, parents []int) (Local, error) {
	ps, err := normalize(node, parents, len(c.byNode))
	if err != nil {
		return Local{}, err
	}
	key := Signature(ps)
	m := &c.byNode[node]
	if v, ok := m.Load(key); ok {
		c.hits.Add(1)
		if metricsErr == nil {
			cacheHits.Add(context.Background(), 1)
		}
		e := v.(entry)
		return e.local, e.err
	}

	local, err := c.fn.LocalScore(node, ps)
	v, _ := m.LoadOrStore(key, entry{local: local, err: err})
	c.misses.Add(1)
	if metricsErr == nil {
		cacheMisses.Add(context.Background(), 1)
	}
	e := v.(entry)

	return e.local, e.err
}

// Invalidate drops every entry of node.
func (c *Cache) Invalidate(node int) {
	if node >= 0 && node < len(c.byNode) {
		c.byNode[node].Clear()
	}
}

// InvalidateAll drops every entry.
func (c *Cache) InvalidateAll() {
	for i := range c.byNode {
		c.byNode[i].Clear()
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	var n int
	for i := range c.byNode {
		c.byNode[i].Range(func(_, _ any) bool {
			n++
			return true
		})
	}

	return n
}

// Stats returns the hit and miss counts.
func (c *Cache) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// SampleSize forwards to the wrapped function.
func (c *Cache) SampleSize() int { return c.fn.SampleSize() }

// NumVariables forwards to the wrapped function.
func (c *Cache) NumVariables() int { return len(c.byNode) }
