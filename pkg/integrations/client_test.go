package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/podiumd/versionwatch/pkg/cache"
	"github.com/podiumd/versionwatch/pkg/httputil"
)

func TestNewClient(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	headers := map[string]string{"Authorization": "Bearer token"}
	client := NewClient(c, "test", time.Hour, headers)

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if _, ok := client.cache.(*cache.Scoped); !ok {
		t.Errorf("NewClient() cache = %T, want a namespaced backend", client.cache)
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
	if client.attempts != httputil.DefaultAttempts {
		t.Errorf("NewClient() attempts = %d, want %d", client.attempts, httputil.DefaultAttempts)
	}
}

func TestNewClientNilCache(t *testing.T) {
	client := NewClient(nil, "test", time.Hour, nil)
	if client.cache == nil {
		t.Fatal("NewClient() should fall back to a null cache")
	}
	if client.headers != nil {
		t.Error("NewClient() should allow nil headers")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != UserAgent {
			t.Errorf("User-Agent = %q, want %q", got, UserAgent)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := Options{HTTPClient: server.Client()}.NewClient("test", nil)

	var result response
	if err := client.Get(context.Background(), server.URL, &result); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if result.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", result.Message, "hello")
	}
}

func TestClientGetWithHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("X-Default"); got != "override" {
			t.Errorf("X-Default = %q, want override", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := Options{HTTPClient: server.Client()}.NewClient("test", map[string]string{
		"Accept":    "application/json",
		"X-Default": "default",
	})

	var v map[string]any
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Default": "override"}, &v)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
}

func TestClientGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>Versie 1.2.3</body></html>"))
	}))
	defer server.Close()

	client := Options{HTTPClient: server.Client()}.NewClient("test", nil)
	text, err := client.GetText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if text != "<html><body>Versie 1.2.3</body></html>" {
		t.Errorf("GetText() = %q", text)
	}
}

func TestClientStatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		want      error
		retryable bool
	}{
		{"not found", http.StatusNotFound, ErrNotFound, false},
		{"server error", http.StatusInternalServerError, ErrNetwork, true},
		{"rate limited", http.StatusTooManyRequests, ErrNetwork, true},
		{"forbidden", http.StatusForbidden, ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := Options{HTTPClient: server.Client()}.NewClient("test", nil)
			_, err := client.GetText(context.Background(), server.URL)
			if !errors.Is(err, tt.want) {
				t.Errorf("GetText() error = %v, want %v", err, tt.want)
			}
			if httputil.IsRetryable(err) != tt.retryable {
				t.Errorf("IsRetryable() = %v, want %v", httputil.IsRetryable(err), tt.retryable)
			}
		})
	}
}

func TestClientRetries(t *testing.T) {
	old := retryDelay
	retryDelay = time.Millisecond
	defer func() { retryDelay = old }()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := Options{HTTPClient: server.Client(), Attempts: 3}.NewClient("test", nil)
	text, err := client.GetText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if text != "ok" || calls.Load() != 3 {
		t.Errorf("GetText() = %q after %d calls, want ok after 3", text, calls.Load())
	}
}

func TestClientNoRetryByDefault(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := Options{HTTPClient: server.Client()}.NewClient("test", nil)
	if _, err := client.GetText(context.Background(), server.URL); err == nil {
		t.Fatal("GetText() expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}
}

func TestClientCachesResponses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("cached body"))
	}))
	defer server.Close()

	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	client := Options{HTTPClient: server.Client(), Cache: c, CacheTTL: time.Hour}.NewClient("test", nil)
	for range 3 {
		text, err := client.GetText(context.Background(), server.URL)
		if err != nil {
			t.Fatalf("GetText() error: %v", err)
		}
		if text != "cached body" {
			t.Errorf("GetText() = %q", text)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}
}

func TestClientNamespacesShareBackend(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("page"))
	}))
	defer server.Close()

	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()

	opts := Options{HTTPClient: server.Client(), Cache: c, CacheTTL: time.Hour}
	ctx := context.Background()
	for _, ns := range []string{"tagpage", "releasenotes"} {
		if _, err := opts.NewClient(ns, nil).GetText(ctx, server.URL); err != nil {
			t.Fatalf("GetText(%s) error: %v", ns, err)
		}
	}
	if calls.Load() != 2 {
		t.Errorf("server called %d times, want 2 (one per namespace)", calls.Load())
	}
	if _, hit, _ := c.Get(ctx, "tagpage:"+cache.HTTPKey(server.URL)); !hit {
		t.Error("backend has no entry under the tagpage namespace")
	}
}

func TestClientCachedRefresh(t *testing.T) {
	c, _ := cache.NewFileCache(t.TempDir())
	defer c.Close()
	client := NewClient(c, "test", time.Hour, nil)

	ctx := context.Background()
	var calls int
	fetch := func(v *string) func() error {
		return func() error {
			calls++
			*v = "fresh"
			return nil
		}
	}

	var a, b, d string
	if err := client.Cached(ctx, "key", false, &a, fetch(&a)); err != nil {
		t.Fatal(err)
	}
	if err := client.Cached(ctx, "key", false, &b, fetch(&b)); err != nil {
		t.Fatal(err)
	}
	if err := client.Cached(ctx, "key", true, &d, fetch(&d)); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("fetch called %d times, want 2", calls)
	}
	if b != "fresh" {
		t.Errorf("cached value = %q, want fresh", b)
	}
}

func TestCheckStatus(t *testing.T) {
	for _, code := range []int{200, 201, 204} {
		if err := checkStatus(code); err != nil {
			t.Errorf("checkStatus(%d) = %v, want nil", code, err)
		}
	}
	if !errors.Is(checkStatus(404), ErrNotFound) {
		t.Error("checkStatus(404) should be ErrNotFound")
	}
	if !errors.Is(checkStatus(301), ErrNetwork) {
		t.Error("checkStatus(301) should be ErrNetwork")
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://example.com/docs/release-notes", "/changelog/1.2", "https://example.com/changelog/1.2"},
		{"https://example.com/docs/", "v2.html", "https://example.com/docs/v2.html"},
		{"https://example.com/docs/", "https://other.org/x", "https://other.org/x"},
		{"https://example.com/docs/", "", "https://example.com/docs/"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}
