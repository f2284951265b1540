package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "https://hub.docker.com/v2/x", []byte(`{"results":[]}`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := c.Get(ctx, "https://hub.docker.com/v2/x")
	if err != nil || !hit {
		t.Fatalf("Get() = %v, %v; want hit", hit, err)
	}
	if string(data) != `{"results":[]}` {
		t.Errorf("data = %s", data)
	}

	if err := c.Delete(ctx, "https://hub.docker.com/v2/x"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "https://hub.docker.com/v2/x"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("Get() = %v, %v; want expired miss", hit, err)
	}
}

func TestFileCache_CorruptEntryIsMiss(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, hit, err := c.Get(ctx, "key"); hit || err != nil {
		t.Errorf("Get() = %v, %v; want miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d, want 3", n)
	}

	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still has %d entries", len(entries))
	}
}

func TestNamespace(t *testing.T) {
	ctx := context.Background()
	backend, _ := NewFileCache(t.TempDir())

	hub := Namespace(backend, "dockerhub:")
	gh := Namespace(backend, "github:")

	if err := hub.Set(ctx, "k", []byte("hub"), 0); err != nil {
		t.Fatal(err)
	}
	if err := gh.Set(ctx, "k", []byte("gh"), 0); err != nil {
		t.Fatal(err)
	}

	data, _, _ := hub.Get(ctx, "k")
	if string(data) != "hub" {
		t.Errorf("hub value = %s, want hub", data)
	}
	data, _, _ = backend.Get(ctx, "github:k")
	if string(data) != "gh" {
		t.Errorf("raw github value = %s, want gh", data)
	}

	nested := Namespace(hub, "library:")
	if err := nested.Set(ctx, "k", []byte("nested"), 0); err != nil {
		t.Fatal(err)
	}
	data, _, _ = backend.Get(ctx, "dockerhub:library:k")
	if string(data) != "nested" {
		t.Errorf("nested value = %s, want nested", data)
	}

	if _, hit, _ := Namespace(nil, "x:").Get(ctx, "k"); hit {
		t.Error("nil inner should behave as NullCache")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestHTTPKey(t *testing.T) {
	if got := HTTPKey("https://github.com/a/b/tags"); got != "http:https://github.com/a/b/tags" {
		t.Errorf("HTTPKey() = %q", got)
	}
}

type fakeRedis struct {
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.([]byte)
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error { return nil }

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	c := &RedisCache{client: fake, prefix: "versionwatch:"}

	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Fatalf("Get(missing) = %v, %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if fake.ttls["versionwatch:k"] != time.Minute {
		t.Errorf("ttl = %v, want 1m", fake.ttls["versionwatch:k"])
	}

	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = %q, %v, %v; want v, true, nil", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("entry should be gone after Delete")
	}

	boom := errors.New("connection refused")
	fake.getErr = boom
	if _, _, err := c.Get(ctx, "k"); !errors.Is(err, boom) {
		t.Errorf("Get() error = %v, want %v", err, boom)
	}
}
