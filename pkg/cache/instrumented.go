package cache

import (
	"context"
	"time"

	"github.com/cipherstack/cipherstack/pkg/observability"
)

// Instrumented wraps a Cache and reports hits, misses and writes to the
// registered observability cache hooks under keyType.
type Instrumented struct {
	Cache
	keyType string
}

// NewInstrumented wraps inner. A nil inner is replaced by a NullCache.
func NewInstrumented(inner Cache, keyType string) *Instrumented {
	if inner == nil {
		inner = NewNullCache()
	}
	return &Instrumented{Cache: inner, keyType: keyType}
}

// Get retrieves a value and reports a hit or miss.
func (c *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, c.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, c.keyType)
		}
	}
	return data, ok, err
}

// Set stores a value and reports the write.
func (c *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, c.keyType, len(data))
	return nil
}
