package cache

import (
	"testing"
	"time"

	"crypto-spot-service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig_Memory(t *testing.T) {
	cache, err := NewCacheFromConfig(config.CacheConfig{
		Backend: BackendMemory,
		TTL:     time.Minute,
	})
	require.NoError(t, err)
	require.NotNil(t, cache)
	defer func() {
		_ = cache.Close()
	}()

	_, ok := cache.(*MemoryCache)
	assert.True(t, ok)
}

func TestNewCacheFromConfig_UnknownBackend(t *testing.T) {
	_, err := NewCacheFromConfig(config.CacheConfig{
		Backend: "memcached",
		TTL:     time.Minute,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported cache backend")
}

func TestNewCacheFromConfig_RedisUnreachable(t *testing.T) {
	_, err := NewCacheFromConfig(config.CacheConfig{
		Backend: BackendRedis,
		TTL:     time.Minute,
		Redis: config.RedisConfig{
			// Nothing listens here; the factory must fail fast instead of
			// handing back a broken cache
			Addr: "127.0.0.1:1",
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Redis")
}
