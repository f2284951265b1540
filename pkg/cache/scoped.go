package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache and prefixes every key.
// This keeps sources that fetch similar URLs from sharing entries.
//
// Example usage:
//
//	hub := cache.Namespace(backend, "dockerhub:")
//	gh := cache.Namespace(backend, "github:")
type Scoped struct {
	inner  Cache
	prefix string
}

// Namespace returns a Cache that prefixes all keys with prefix.
// A nil inner cache is replaced with a [NullCache]. Namespaces nest:
// Namespace(Namespace(c, "a:"), "b:") stores keys under "a:b:".
func Namespace(inner Cache, prefix string) Cache {
	if inner == nil {
		inner = NewNullCache()
	}
	if s, ok := inner.(*Scoped); ok {
		return &Scoped{inner: s.inner, prefix: s.prefix + prefix}
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed key from the wrapped cache.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a prefixed key in the wrapped cache.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes a prefixed key from the wrapped cache.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the wrapped cache.
func (s *Scoped) Close() error {
	return s.inner.Close()
}

var _ Cache = (*Scoped)(nil)
