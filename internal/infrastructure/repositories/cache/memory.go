package cache

import (
	"context"
	"time"

	"crypto-spot-service/internal/domain/interfaces"

	gocache "github.com/patrickmn/go-cache"
)

// cleanupInterval is how often expired entries are swept from memory. Reads
// never see swept-but-present entries either way; this only bounds memory.
const cleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface on top of an in-process store
// with per-entry TTL. The keyspace is bounded by the symbol list, so there is
// no size cap or LRU eviction: entries disappear only by aging out or Clear.
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates an in-memory cache with the given default TTL
func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value; expired entries read as absent
func (c *MemoryCache) Get(_ context.Context, key string) (string, error) {
	value, found := c.store.Get(key)
	if !found {
		return "", ErrKeyNotFound
	}
	return value.(string), nil
}

// Set stores a value with the given TTL
func (c *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.store.Set(key, value, ttl)
	return nil
}

// Delete removes a single key
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.store.Delete(key)
	return nil
}

// Clear removes every entry regardless of age
func (c *MemoryCache) Clear(_ context.Context) error {
	c.store.Flush()
	return nil
}

// Close is a no-op for the in-memory backend
func (c *MemoryCache) Close() error {
	return nil
}

// Size returns the number of stored items, expired ones included until swept
func (c *MemoryCache) Size() int {
	return c.store.ItemCount()
}

var _ interfaces.Cache = (*MemoryCache)(nil)
