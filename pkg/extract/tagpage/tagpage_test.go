package tagpage

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/podiumd/versionwatch/pkg/integrations"
)

const tagsPage = `<html><body>
<div class="Box">
  <div class="Box-row"><h2><a href="/keycloak/keycloak/releases/tag/v26.0.5">v26.0.5</a></h2><a href="/zip">zip</a></div>
  <div class="Box-row"><h2><a href="/keycloak/keycloak/releases/tag/v26.1.0">v26.1.0</a></h2></div>
  <div class="Box-row"><h2><a href="/keycloak/keycloak/releases/tag/nightly">nightly</a></h2></div>
  <div class="Box-row"><span>no link</span></div>
</div>
<div class="commit"><a href="/keycloak/keycloak/releases/tag/v25.0.0">v25.0.0</a></div>
</body></html>`

func newTestExtractor(t *testing.T, body string, status int, prefix string) (*Extractor, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/keycloak/keycloak/tags" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	e := New(integrations.Options{HTTPClient: server.Client()}, "keycloak/keycloak", prefix)
	e.BaseURL = server.URL
	return e, server
}

func TestURL(t *testing.T) {
	e := New(integrations.Options{}, "/owner/repo/", "")
	if got := e.URL(); got != "https://github.com/owner/repo/tags" {
		t.Errorf("URL() = %q", got)
	}
	if e.Name() != "owner/repo" {
		t.Errorf("Name() = %q", e.Name())
	}
}

func TestCandidates(t *testing.T) {
	e, server := newTestExtractor(t, tagsPage, http.StatusOK, "v")

	got, err := e.Candidates(context.Background())
	if err != nil {
		t.Fatalf("Candidates() error: %v", err)
	}
	want := []string{"v26.0.5", "v26.1.0", "nightly", "v25.0.0"}
	if len(got) != len(want) {
		t.Fatalf("Candidates() returned %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Token != w {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i].Token, w)
		}
	}
	if got[0].URL != server.URL+"/keycloak/keycloak/releases/tag/v26.0.5" {
		t.Errorf("URL not resolved: %q", got[0].URL)
	}
}

func TestLatestVersion(t *testing.T) {
	e, server := newTestExtractor(t, tagsPage, http.StatusOK, "v")

	got, err := e.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("LatestVersion() error: %v", err)
	}
	if got == nil || got.Raw != "v26.1.0" {
		t.Fatalf("LatestVersion() = %v, want v26.1.0", got)
	}
	if got.SourceURL != server.URL+"/keycloak/keycloak/releases/tag/v26.1.0" {
		t.Errorf("SourceURL = %q", got.SourceURL)
	}
}

func TestLatestVersionNoMatch(t *testing.T) {
	e, _ := newTestExtractor(t, `<html><body><p>moved</p></body></html>`, http.StatusOK, "v")

	got, err := e.LatestVersion(context.Background())
	if err != nil {
		t.Fatalf("LatestVersion() error: %v", err)
	}
	if got != nil {
		t.Errorf("LatestVersion() = %v, want nil", got)
	}
}

func TestLatestVersionNotFound(t *testing.T) {
	e, _ := newTestExtractor(t, "", http.StatusNotFound, "v")

	_, err := e.LatestVersion(context.Background())
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("LatestVersion() error = %v, want ErrNotFound", err)
	}
}
