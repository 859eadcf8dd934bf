package analytics

import (
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry pairs a computed result with the time it was computed; entries
// are valid while now - computedAt < ttl.
type cacheEntry struct {
	value      any
	computedAt time.Time
}

// CacheStats is a point-in-time view of the cache counters.
type CacheStats struct {
	Entries    int           `json:"entries"`
	MaxEntries int           `json:"max_entries"`
	TTL        time.Duration `json:"ttl_ns"`
	Hits       int64         `json:"hits"`
	Misses     int64         `json:"misses"`
}

// ResultCache is a bounded LRU of analytics results with a single fixed TTL.
// Expired entries count as misses and are overwritten by the next Put; LRU
// eviction caps memory under wide parameter fan-out. The clock is injectable
// so expiry behavior is testable without sleeping.
type ResultCache struct {
	entries    *lru.Cache[string, cacheEntry]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

// NewResultCache builds a cache holding at most maxEntries results for ttl
// each. now defaults to time.Now.
func NewResultCache(maxEntries int, ttl time.Duration, now func() time.Time) (*ResultCache, error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("cache max entries must be positive, got %d", maxEntries)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", ttl)
	}
	if now == nil {
		now = time.Now
	}

	entries, err := lru.New[string, cacheEntry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("building lru: %w", err)
	}

	return &ResultCache{
		entries:    entries,
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        now,
	}, nil
}

// Get returns the cached value for key when present and unexpired.
func (c *ResultCache) Get(key string) (any, bool) {
	entry, ok := c.entries.Get(key)
	if !ok || c.now().Sub(entry.computedAt) >= c.ttl {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.value, true
}

// Put stores value under key, stamped with the current time.
func (c *ResultCache) Put(key string, value any) {
	c.entries.Add(key, cacheEntry{value: value, computedAt: c.now()})
}

// Purge drops every entry. Counters are preserved.
func (c *ResultCache) Purge() {
	c.entries.Purge()
}

// Stats reports entry and hit/miss counts.
func (c *ResultCache) Stats() CacheStats {
	return CacheStats{
		Entries:    c.entries.Len(),
		MaxEntries: c.maxEntries,
		TTL:        c.ttl,
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
	}
}

// cacheKey builds the canonical <metric>_<days> key.
func cacheKey(metric string, days int) string {
	return fmt.Sprintf("%s_%d", metric, days)
}
