package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"crypto-spot-service/internal/domain/interfaces"
	"crypto-spot-service/internal/infrastructure/logging"
	"crypto-spot-service/internal/infrastructure/metrics"
)

// GetOrCompute memoizes a computation behind a cache key. A valid entry is
// returned without invoking compute; otherwise compute runs, its failure
// propagates with the cache left untouched, and its result is stored under
// the key with the given TTL.
//
// Two concurrent callers missing on the same key will both compute and both
// write, last write winning. The fetch pipeline touches each key at most once
// per run, so the duplicate work is accepted rather than locked against.
func GetOrCompute[T any](ctx context.Context, c interfaces.Cache, key string, ttl time.Duration, compute func(context.Context) (T, error)) (T, error) {
	var zero T

	raw, err := c.Get(ctx, key)
	if err == nil {
		var value T
		if unmarshalErr := json.Unmarshal([]byte(raw), &value); unmarshalErr == nil {
			metrics.RecordCacheOperation("get", "hit")
			logging.Debug(ctx, "Cache hit", logging.Fields{
				logging.FieldCacheKey: key,
			})
			return value, nil
		}
		// A poisoned entry reads as a miss and gets recomputed
		logging.Warn(ctx, "Dropping undecodable cache entry", logging.Fields{
			logging.FieldCacheKey: key,
		})
		_ = c.Delete(ctx, key)
	} else if !errors.Is(err, ErrKeyNotFound) {
		// Backend trouble (e.g. Redis down) degrades to compute-every-time
		logging.WarnWithError(ctx, "Cache read failed", err, logging.Fields{
			logging.FieldCacheKey: key,
		})
	}

	metrics.RecordCacheOperation("get", "miss")

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		// The computed value is still good; only the memoization is lost
		logging.WarnWithError(ctx, "Failed to encode value for caching", err, logging.Fields{
			logging.FieldCacheKey: key,
		})
		return value, nil
	}

	if setErr := c.Set(ctx, key, string(data), ttl); setErr != nil {
		metrics.RecordCacheOperation("set", "error")
		logging.WarnWithError(ctx, "Cache write failed", setErr, logging.Fields{
			logging.FieldCacheKey: key,
		})
		return value, nil
	}

	metrics.RecordCacheOperation("set", "success")
	return value, nil
}
