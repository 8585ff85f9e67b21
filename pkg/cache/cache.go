// Package cache provides a byte-oriented key/value cache for derived
// artifacts such as rendered pipeline diagrams.
//
// Only values derived from layer configuration are cached. Ciphertext and
// plaintext never pass through a cache.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values by string key.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
