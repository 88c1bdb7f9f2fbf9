package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"crypto-spot-service/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute_ComputesOnceWithinTTL(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	calls := 0
	compute := func(context.Context) (*entities.Asset, error) {
		calls++
		return entities.NewAsset("bitcoin", "BTC", "Bitcoin", 65000, time.Now()), nil
	}

	first, err := GetOrCompute(ctx, cache, "spot-price:BTC", time.Minute, compute)
	require.NoError(t, err)

	second, err := GetOrCompute(ctx, cache, "spot-price:BTC", time.Minute, compute)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first.PriceUSD, second.PriceUSD)
	assert.Equal(t, "bitcoin", second.ID)
}

func TestGetOrCompute_RecomputesAfterTTL(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, err := GetOrCompute(ctx, cache, "k", 20*time.Millisecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	time.Sleep(30 * time.Millisecond)

	v, err = GetOrCompute(ctx, cache, "k", 20*time.Millisecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_FailurePropagatesAndCacheStaysEmpty(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	computeErr := errors.New("upstream down")
	_, err := GetOrCompute(ctx, cache, "k", time.Minute, func(context.Context) (string, error) {
		return "", computeErr
	})
	require.ErrorIs(t, err, computeErr)

	// Nothing was stored: the next call computes again
	calls := 0
	v, err := GetOrCompute(ctx, cache, "k", time.Minute, func(context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrCompute_ClearForcesRecompute(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := GetOrCompute(ctx, cache, "k", time.Hour, compute)
	require.NoError(t, err)

	require.NoError(t, cache.Clear(ctx))

	_, err = GetOrCompute(ctx, cache, "k", time.Hour, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_PoisonedEntryIsRecomputed(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", "{not json", time.Minute))

	v, err := GetOrCompute(ctx, cache, "k", time.Minute, func(context.Context) (map[string]float64, error) {
		return map[string]float64{"USD": 1}, nil
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v["USD"], 1e-9)
}

func TestGetOrCompute_DistinctKeysComputeIndependently(t *testing.T) {
	cache := NewMemoryCache(5 * time.Minute)
	ctx := context.Background()

	calls := map[string]int{}
	for _, key := range []string{"spot-price:BTC", "spot-price:ETH", "exchange-rates:BTC"} {
		key := key
		_, err := GetOrCompute(ctx, cache, key, time.Minute, func(context.Context) (string, error) {
			calls[key]++
			return key, nil
		})
		require.NoError(t, err)
	}

	for key, n := range calls {
		assert.Equal(t, 1, n, "key %s", key)
	}
}
