// Package cache stores rendered artifacts by key.
//
// Three backends implement [Cache]:
//
//   - [FileCache] writes one JSON file per entry under a directory, for CLI use
//   - [RedisCache] keeps entries in Redis, for the HTTP server
//   - [NullCache] stores nothing, for disabling caching
//
// Keys are built with [Key], which hashes its parts so arbitrary input (a
// list of tree values, a format name) yields a fixed-length key.
// [Instrument] wraps any backend so hits, misses and writes reach the hooks
// in [github.com/matzehuels/structkit/pkg/observability].
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is a miss
	// (found == false), not an error.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set stores data under key. A ttl <= 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry owned by the cache.
	Clear(ctx context.Context) error

	// Close releases resources held by the cache.
	Close() error
}
