package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket is a per-client token bucket. It starts full and refills at a
// fixed rate up to its capacity.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	refillRate int // tokens per second
	lastRefill time.Time
}

func NewTokenBucket(capacity, refillRate int) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow consumes one token if available
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Tokens returns the current token count after refill
func (tb *TokenBucket) Tokens() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	return tb.tokens
}

// refill adds tokens for the elapsed time. Caller holds the lock.
func (tb *TokenBucket) refill() {
	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)

	tokensToAdd := int(elapsed.Seconds() * float64(tb.refillRate))
	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.capacity {
			tb.tokens = tb.capacity
		}
		tb.lastRefill = now
	}
}

// ClientLimiter keys token buckets by client identity and drops idle ones to
// bound memory.
type ClientLimiter struct {
	mu         sync.RWMutex
	buckets    map[string]*TokenBucket
	capacity   int
	refillRate int

	lastCleanup     time.Time
	cleanupInterval time.Duration
}

func NewClientLimiter(capacity, refillRate int) *ClientLimiter {
	return &ClientLimiter{
		buckets:         make(map[string]*TokenBucket),
		capacity:        capacity,
		refillRate:      refillRate,
		lastCleanup:     time.Now(),
		cleanupInterval: 10 * time.Minute,
	}
}

// Allow consumes one token from the client's bucket
func (cl *ClientLimiter) Allow(clientID string) bool {
	return cl.getBucket(clientID).Allow()
}

// Tokens returns the client's remaining tokens
func (cl *ClientLimiter) Tokens(clientID string) int {
	return cl.getBucket(clientID).Tokens()
}

func (cl *ClientLimiter) getBucket(clientID string) *TokenBucket {
	cl.mu.RLock()
	bucket, exists := cl.buckets[clientID]
	cl.mu.RUnlock()
	if exists {
		return bucket
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if bucket, exists := cl.buckets[clientID]; exists {
		return bucket
	}

	bucket = NewTokenBucket(cl.capacity, cl.refillRate)
	cl.buckets[clientID] = bucket
	cl.maybeCleanup()
	return bucket
}

// maybeCleanup drops buckets that have been full and untouched for a while.
// Caller holds the write lock.
func (cl *ClientLimiter) maybeCleanup() {
	now := time.Now()
	if now.Sub(cl.lastCleanup) < cl.cleanupInterval {
		return
	}

	cutoff := now.Add(-30 * time.Minute)
	for clientID, bucket := range cl.buckets {
		if bucket.tokens == bucket.capacity && bucket.lastRefill.Before(cutoff) {
			delete(cl.buckets, clientID)
		}
	}
	cl.lastCleanup = now
}

// Size reports how many client buckets are live
func (cl *ClientLimiter) Size() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.buckets)
}
