package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMaxEntries bounds a MemoryCache created with a non-positive size.
const DefaultMaxEntries = 256

// DefaultMaxAge caps how long any entry lives, whatever TTL Set was given.
const DefaultMaxAge = 24 * time.Hour

// MemoryCache is an in-process LRU cache safe for concurrent use.
// Entries leave the cache when evicted, when their own TTL passes, or when
// they outlive the cache-wide maximum age.
type MemoryCache struct {
	lru *expirable.LRU[string, memEntry]
	now func() time.Time
}

type memEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries values for up to
// DefaultMaxAge each.
func NewMemoryCache(maxEntries int) *MemoryCache {
	return NewMemoryCacheWithMaxAge(maxEntries, DefaultMaxAge)
}

// NewMemoryCacheWithMaxAge is NewMemoryCache with an explicit cache-wide
// maximum age.
func NewMemoryCacheWithMaxAge(maxEntries int, maxAge time.Duration) *MemoryCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, memEntry](maxEntries, nil, maxAge),
		now: time.Now,
	}
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set stores a value, evicting the least recently used entry when full.
// A non-positive ttl leaves only the cache-wide maximum age.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := memEntry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.lru.Add(key, e)
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
