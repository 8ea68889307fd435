// Package cache provides in-process memoization for layout results and
// rendered artifacts.
//
// Layout computation is pure, so identical inputs always produce identical
// outputs; the cache skips recomputation when a host re-lays-out the same
// item set at the same dimensions. Keys are derived from content hashes of
// the inputs plus the option sets that influence the result (see [Keyer]).
//
// Two implementations are provided: [MemoryCache] for normal use and
// [NullCache] to disable memoization entirely. Both stay strictly
// in-process; nothing is ever written to disk or the network.
package cache

import (
	"context"
	"time"
)

// Default TTLs applied when storing pipeline results.
const (
	// TTLLayout is how long computed layouts stay cached.
	TTLLayout = time.Hour

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = time.Hour
)

// Cache stores computed results keyed by content-derived strings.
type Cache interface {
	// Get returns the cached data for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when memoization should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set does nothing.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
