package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/podiumd/versionwatch/pkg/cache"
)

// DefaultTimeout is the HTTP client timeout when none is configured.
const DefaultTimeout = 30 * time.Second

// UserAgent is sent with every upstream request.
var UserAgent = "versionwatch"

var (
	// ErrNotFound is returned when an upstream page or resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")
)

// Options carries the transport settings shared by every source client.
// The zero value fetches without cache or retry using [DefaultTimeout].
type Options struct {
	HTTPClient *http.Client  // Optional; NewHTTPClient(DefaultTimeout) when nil
	Cache      cache.Cache   // Optional; NullCache when nil
	CacheTTL   time.Duration // TTL for cached responses (0 = no expiry)
	Attempts   int           // Attempts per request; 1 = no retry
}

// NewClient builds a Client in namespace from the options.
func (o Options) NewClient(namespace string, headers map[string]string) *Client {
	c := NewClient(o.Cache, namespace, o.CacheTTL, headers)
	c.SetHTTPClient(o.HTTPClient)
	c.SetAttempts(o.Attempts)
	return c
}

// NewHTTPClient creates an HTTP client with the given timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// ResolveURL resolves ref against base. Absolute refs are returned as-is;
// an empty ref yields base. If either fails to parse, ref is returned.
func ResolveURL(base, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return base
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// URLEncode percent-encodes a string for use in URL paths.
// This is a convenience wrapper around [url.PathEscape].
func URLEncode(s string) string { return url.PathEscape(s) }
