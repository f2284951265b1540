// Package observability provides hooks for extraction, cache and HTTP events.
//
// Libraries emit events through the registered hooks; the defaults are
// no-ops, so nothing is logged or measured unless main registers an
// implementation. The CLI binds these hooks to its logger in verbose mode.
//
// Register hooks at application startup:
//
//	observability.SetExtractHooks(&logHooks{logger})
//	observability.SetHTTPHooks(&logHooks{logger})
//
// Libraries call hooks to emit events:
//
//	observability.Extract().OnExtractStart(ctx, "keycloak")
//	// ... fetch and select ...
//	observability.Extract().OnExtractComplete(ctx, "keycloak", 12, "26.0.5", d, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Extract Hooks
// =============================================================================

// ExtractHooks receives events from version extractors.
type ExtractHooks interface {
	OnExtractStart(ctx context.Context, source string)
	// latest is empty when no candidate survived filtering.
	OnExtractComplete(ctx context.Context, source string, candidates int, latest string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from response cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, namespace string)
	OnCacheMiss(ctx context.Context, namespace string)
	OnCacheSet(ctx context.Context, namespace string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExtractHooks is a no-op implementation of ExtractHooks.
type NoopExtractHooks struct{}

func (NoopExtractHooks) OnExtractStart(context.Context, string) {}
func (NoopExtractHooks) OnExtractComplete(context.Context, string, int, string, time.Duration, error) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	extractHooks ExtractHooks = NoopExtractHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	httpHooks    HTTPHooks    = NoopHTTPHooks{}
	hooksMu      sync.RWMutex
)

// SetExtractHooks registers custom extraction hooks.
// This should be called once at application startup.
func SetExtractHooks(h ExtractHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		extractHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Extract returns the registered extraction hooks.
func Extract() ExtractHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return extractHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	extractHooks = NoopExtractHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
