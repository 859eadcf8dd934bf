package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.current }
func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

func TestResultCache_HitWithinTTL(t *testing.T) {
	clock := newFakeClock()
	cache, err := NewResultCache(8, 5*time.Minute, clock.Now)
	require.NoError(t, err)

	cache.Put("users_30", 42)
	clock.Advance(4 * time.Minute)

	value, ok := cache.Get("users_30")
	require.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestResultCache_ExpiresAfterTTL(t *testing.T) {
	clock := newFakeClock()
	cache, err := NewResultCache(8, 5*time.Minute, clock.Now)
	require.NoError(t, err)

	cache.Put("users_30", 42)
	clock.Advance(5 * time.Minute)

	_, ok := cache.Get("users_30")
	assert.False(t, ok)
}

func TestResultCache_BoundedEviction(t *testing.T) {
	clock := newFakeClock()
	cache, err := NewResultCache(2, time.Hour, clock.Now)
	require.NoError(t, err)

	cache.Put("users_7", 1)
	cache.Put("users_30", 2)
	cache.Put("users_90", 3)

	assert.Equal(t, 2, cache.Stats().Entries)
	_, ok := cache.Get("users_7")
	assert.False(t, ok, "oldest entry should have been evicted")
}

func TestResultCache_PurgeAndStats(t *testing.T) {
	clock := newFakeClock()
	cache, err := NewResultCache(8, time.Hour, clock.Now)
	require.NoError(t, err)

	cache.Put("sales_30", "x")
	_, ok := cache.Get("sales_30")
	require.True(t, ok)
	_, ok = cache.Get("sales_90")
	require.False(t, ok)

	cache.Purge()

	stats := cache.Stats()
	assert.Equal(t, 0, stats.Entries)
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 8, stats.MaxEntries)
}

func TestNewResultCache_RejectsBadParams(t *testing.T) {
	_, err := NewResultCache(0, time.Minute, nil)
	require.Error(t, err)
	_, err = NewResultCache(8, 0, nil)
	require.Error(t, err)
}

func TestCacheKeyFormat(t *testing.T) {
	assert.Equal(t, "sales_30", cacheKey("sales", 30))
	assert.NotEqual(t, cacheKey("sales", 3), cacheKey("sales", 30))
}
