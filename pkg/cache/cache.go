// Package cache provides byte-oriented cache backends for upstream responses.
//
// Caching is off by default: versionwatch re-fetches every source on every
// run. The file and Redis backends are opt-in for repeated runs against the
// same pages (CI jobs, the HTTP server).
//
// Backends:
//   - [NullCache]: never stores anything (default)
//   - [FileCache]: one JSON file per key under a directory
//   - [RedisCache]: keys in Redis with native expiry
//
// Use [Namespace] to give each upstream source its own key space.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads by key.
type Cache interface {
	// Get returns the payload for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
