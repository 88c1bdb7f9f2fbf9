package interfaces

import (
	"context"
	"time"
)

// Cache is a string-valued store with per-entry TTL. Entries past their TTL
// are indistinguishable from absent ones.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry regardless of age.
	Clear(ctx context.Context) error
	Close() error
}
