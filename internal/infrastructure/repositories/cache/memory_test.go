package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "spot-price:BTC", `{"amount":"65000"}`, time.Minute))

	value, err := cache.Get(ctx, "spot-price:BTC")
	require.NoError(t, err)
	assert.Equal(t, `{"amount":"65000"}`, value)
}

func TestMemoryCache_GetMissing(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)

	_, err := cache.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_ExpiredEntryReadsAsAbsent(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", 20*time.Millisecond))

	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)

	time.Sleep(30 * time.Millisecond)

	_, err = cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_OverwriteRefreshesEntry(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "old", time.Minute))
	require.NoError(t, cache.Set(ctx, "k", "new", time.Minute))

	value, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "new", value)
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, cache.Delete(ctx, "k"))

	_, err := cache.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryCache_ClearRemovesEverythingRegardlessOfAge(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "fresh", "v", time.Hour))
	require.NoError(t, cache.Set(ctx, "also-fresh", "v", time.Hour))
	assert.Equal(t, 2, cache.Size())

	require.NoError(t, cache.Clear(ctx))

	assert.Equal(t, 0, cache.Size())
	_, err := cache.Get(ctx, "fresh")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
