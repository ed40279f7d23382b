package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	_, ok := cache.Get(ctx, "missing")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
	assert.NoError(t, cache.Ping(ctx))
}

func TestMemoryCache_Expiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Stop()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "k", "v"))

	now = now.Add(30 * time.Second)
	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(31 * time.Second)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_CleanupDropsExpiredEntries(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	defer cache.Stop()
	ctx := context.Background()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	for i := 0; i < 1000; i++ {
		require.NoError(t, cache.Set(ctx, fmt.Sprintf("old-%d", i), "v"))
	}
	now = now.Add(24 * time.Hour)
	require.NoError(t, cache.Set(ctx, "fresh", "v"))

	cache.cleanup()

	cache.mu.RLock()
	defer cache.mu.RUnlock()
	assert.Len(t, cache.data, 1)
	assert.Contains(t, cache.data, "fresh")
}

func TestMemoryCache_ZeroTTLKeepsEntries(t *testing.T) {
	cache := NewMemoryCache(0)
	defer cache.Stop()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	cache.now = func() time.Time { return time.Now().Add(24 * time.Hour) }
	cache.cleanup()

	_, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryCache_StopTwice(t *testing.T) {
	cache := NewMemoryCache(time.Minute)
	cache.Stop()
	assert.NotPanics(t, cache.Stop)
}
