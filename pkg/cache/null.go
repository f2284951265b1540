package cache

import (
	"context"
	"time"
)

// NullCache is the backend used without --cache. Every lookup misses, so
// each run scrapes the upstream pages again.
type NullCache struct{}

// NewNullCache returns the no-op backend.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
