package cache

import (
	"context"
	"fmt"
	"time"

	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/config"
	"crypto-spot-service/internal/infrastructure/logging"

	"github.com/redis/go-redis/v9"
)

// Backend identifiers accepted by the factory
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// NewCacheFromConfig creates a cache instance for the configured backend
func NewCacheFromConfig(cfg config.CacheConfig) (interfaces.Cache, error) {
	ctx := context.Background()

	switch cfg.Backend {
	case BackendMemory:
		logging.Info(ctx, "Creating memory cache", logging.Fields{
			"ttl": cfg.TTL.String(),
		})
		return NewMemoryCache(cfg.TTL), nil

	case BackendRedis:
		logging.Info(ctx, "Creating Redis cache", logging.Fields{
			"addr":     cfg.Redis.Addr,
			"database": cfg.Redis.DB,
		})
		return newRedisFromConfig(cfg.Redis)

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}

// newRedisFromConfig creates a Redis cache and verifies the connection
func newRedisFromConfig(cfg config.RedisConfig) (interfaces.Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}

	return NewRedisCacheWithClient(rdb), nil
}
