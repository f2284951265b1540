package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/podiumd/versionwatch/pkg/cache"
	"github.com/podiumd/versionwatch/pkg/httputil"
	"github.com/podiumd/versionwatch/pkg/observability"
)

// retryDelay is the initial backoff between attempts.
var retryDelay = time.Second

// Client provides shared HTTP functionality for all upstream sources.
// It handles optional caching, optional retries and common request headers.
type Client struct {
	http      *http.Client
	cache     cache.Cache
	namespace string
	ttl       time.Duration
	headers   map[string]string
	attempts  int
}

// NewClient creates a Client with the given cache backend and default headers.
// Entries are stored in the backend under "<namespace>:" with the given TTL.
// Headers are applied to all requests made through this client; pass nil if
// none are needed. A nil backend disables caching.
func NewClient(backend cache.Cache, namespace string, ttl time.Duration, headers map[string]string) *Client {
	return &Client{
		http:      NewHTTPClient(DefaultTimeout),
		cache:     cache.Namespace(backend, namespace+":"),
		namespace: namespace,
		ttl:       ttl,
		headers:   headers,
		attempts:  httputil.DefaultAttempts,
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.http = h
	}
}

// SetAttempts sets how many times a retryable failure is attempted.
// Values below 1 mean a single attempt.
func (c *Client) SetAttempts(n int) {
	c.attempts = max(n, 1)
}

// Cached retrieves a value from cache or executes fetch and caches the result.
// If refresh is true, the cache is bypassed and fetch is always called.
// The fetch function should populate v; on success, v is stored as JSON.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	key = cache.HTTPKey(key)
	if !refresh {
		if data, ok, _ := c.cache.Get(ctx, key); ok {
			if json.Unmarshal(data, v) == nil {
				observability.Cache().OnCacheHit(ctx, c.namespace)
				return nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, c.namespace)
	}
	if err := httputil.Retry(ctx, c.attempts, retryDelay, fetch); err != nil {
		return err
	}
	if data, err := json.Marshal(v); err == nil {
		if c.cache.Set(ctx, key, data, c.ttl) == nil {
			observability.Cache().OnCacheSet(ctx, c.namespace, len(data))
		}
	}
	return nil
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	return c.GetWithHeaders(ctx, url, nil, v)
}

// GetWithHeaders performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
func (c *Client) GetWithHeaders(ctx context.Context, url string, headers map[string]string, v any) error {
	data, err := c.getBytes(ctx, url, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// GetText performs an HTTP GET request and returns the response body as a string.
// Used for HTML pages and YAML manifests.
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	data, err := c.getBytes(ctx, url, nil)
	return string(data), err
}

// getBytes fetches url through the cache and retry policy.
func (c *Client) getBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	var body []byte
	err := c.Cached(ctx, url, false, &body, func() error {
		data, err := c.doRequest(ctx, url, headers)
		if err != nil {
			return err
		}
		body = data
		return nil
	})
	return body, err
}

func (c *Client) doRequest(ctx context.Context, rawURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	host, path := hostPath(rawURL)
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("GET %s: %w", rawURL, err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httputil.Retryable(fmt.Errorf("%w: read body: %v", ErrNetwork, err))
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func hostPath(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", rawURL
	}
	return u.Host, u.Path
}
