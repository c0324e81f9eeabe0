// Package cache provides memoization for solve results. Batch
// processing frequently meets the same puzzle more than once; since a
// solve is fully deterministic, its result can be keyed by a hash of
// the givens and reused.
package cache

import (
	"crypto/sha256"
	"strings"
	"sync"

	"github.com/pflow-xyz/go-sudoku/engine"
)

// SolveCache caches solve results keyed by puzzle hash.
type SolveCache struct {
	mu        sync.RWMutex
	cache     map[string]*engine.Result
	maxSize   int
	hits      int64
	misses    int64
	evictions int64
}

// NewSolveCache creates a cache with the specified maximum size.
// When the cache is full, an arbitrary entry is evicted.
// Set maxSize to 0 for an unlimited cache.
func NewSolveCache(maxSize int) *SolveCache {
	return &SolveCache{
		cache:   make(map[string]*engine.Result),
		maxSize: maxSize,
	}
}

// hashPuzzle creates a deterministic key from an 81-digit puzzle
// string, ignoring whitespace so equivalent spellings share a key.
func hashPuzzle(puzzle string) string {
	normalized := strings.Join(strings.Fields(puzzle), "")
	h := sha256.Sum256([]byte(normalized))
	return string(h[:])
}

// Get retrieves a cached result for the given puzzle.
// Returns nil if not found.
func (c *SolveCache) Get(puzzle string) *engine.Result {
	key := hashPuzzle(puzzle)

	c.mu.Lock()
	defer c.mu.Unlock()

	if res, ok := c.cache[key]; ok {
		c.hits++
		return res
	}
	c.misses++
	return nil
}

// Put stores a result in the cache.
func (c *SolveCache) Put(puzzle string, res *engine.Result) {
	key := hashPuzzle(puzzle)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.maxSize > 0 && len(c.cache) >= c.maxSize {
		for k := range c.cache {
			delete(c.cache, k)
			c.evictions++
			break
		}
	}

	c.cache[key] = res
}

// GetOrCompute retrieves from cache or computes and caches the result.
func (c *SolveCache) GetOrCompute(puzzle string, compute func() *engine.Result) *engine.Result {
	if res := c.Get(puzzle); res != nil {
		return res
	}

	res := compute()
	c.Put(puzzle, res)
	return res
}

// Clear removes all entries from the cache.
func (c *SolveCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*engine.Result)
}

// Size returns the current number of cached entries.
func (c *SolveCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cache)
}

// Stats reports cache effectiveness.
type Stats struct {
	Size      int
	MaxSize   int
	Hits      int64
	Misses    int64
	Evictions int64
	HitRate   float64
}

// Stats returns cache statistics.
func (c *SolveCache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.hits + c.misses
	hitRate := 0.0
	if total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Size:      len(c.cache),
		MaxSize:   c.maxSize,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		HitRate:   hitRate,
	}
}
