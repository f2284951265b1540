// Package integrations provides the shared HTTP client used by every
// version source.
//
// # Overview
//
// Each extractor under pkg/extract talks to one kind of upstream (GitHub tag
// pages, release-note pages, Docker Hub) but they all fetch the same way:
// GET a URL, map non-2xx responses to [ErrNotFound] or [ErrNetwork], and
// hand the body to source-specific parsing. [Client] implements that once.
//
// # Client Pattern
//
// Sources build their client from [Options]:
//
//	opts := integrations.Options{Attempts: 1}
//	client := opts.NewClient("dockerhub", map[string]string{"Accept": "application/json"})
//	var page tagsPage
//	err := client.Get(ctx, url, &page)
//
// Clients handle:
//   - Status mapping: 2xx ok, 404 [ErrNotFound], everything else [ErrNetwork]
//   - Retries for 429/5xx and transport errors when Attempts > 1
//   - Response caching through [cache.Cache] when a backend is configured
//
// Nothing is cached and nothing is retried by default.
//
// [cache.Cache]: github.com/podiumd/versionwatch/pkg/cache.Cache
package integrations
