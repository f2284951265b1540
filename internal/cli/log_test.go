package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/podiumd/versionwatch/pkg/observability"
)

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("checking sources")

	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `).MatchString(buf.String()) {
		t.Errorf("log line %q should start with HH:MM:SS.ms", buf.String())
	}
	if !strings.Contains(buf.String(), "checking sources") {
		t.Errorf("log line %q missing message", buf.String())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)
	logger.Debug("http request")
	if buf.Len() != 0 {
		t.Errorf("debug written at info level: %q", buf.String())
	}

	logger.SetLevel(log.DebugLevel)
	logger.Debug("http request")
	if !strings.Contains(buf.String(), "http request") {
		t.Errorf("debug missing at debug level: %q", buf.String())
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Checked 3 sources")

	if !regexp.MustCompile(`Checked 3 sources \(\d+ms\)`).MatchString(buf.String()) {
		t.Errorf("progress output = %q", buf.String())
	}
}

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)
	if loggerFromContext(ctx) != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnExtractStart(ctx, "keycloak/keycloak")
	h.OnExtractComplete(ctx, "keycloak/keycloak", 10, "26.0.1", 120*time.Millisecond, nil)
	h.OnExtractComplete(ctx, "open-zaak/open-zaak", 0, "", time.Millisecond, nil)
	h.OnExtractComplete(ctx, "clamav", 0, "", time.Millisecond, errors.New("status 503"))
	h.OnCacheHit(ctx, "tagpage")
	h.OnCacheMiss(ctx, "dockerhub")
	h.OnCacheSet(ctx, "dockerhub", 512)
	h.OnRequest(ctx, "GET", "github.com", "/keycloak/keycloak/tags")
	h.OnResponse(ctx, "GET", "github.com", "/keycloak/keycloak/tags", 200, 80*time.Millisecond)
	h.OnError(ctx, "GET", "hub.docker.com", "/v2/repositories", errors.New("timeout"))

	out := buf.String()
	for _, want := range []string{
		"extract source=keycloak/keycloak",
		"latest=26.0.1",
		"latest=-",
		"extract failed",
		"cache hit namespace=tagpage",
		"cache miss namespace=dockerhub",
		"bytes=512",
		"http response",
		"status=200",
		"http error",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
}

func TestVerboseLatestLogsHooks(t *testing.T) {
	captureUI(t)
	t.Cleanup(observability.Reset)

	server := serveFiles(t, map[string]string{
		"/notes": `<p>Versie 2.1.0</p>`,
	})
	catalog := writeFile(t, "sources.toml", `
[[source]]
name = "Notes"
kind = "releasenotes"
locator = "`+server.URL+`/notes"
`)

	var logs, out bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"latest", "--verbose", "--config", catalog, "--format", "json"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("latest --verbose: %v", err)
	}

	for _, want := range []string{"http request", "http response", "extracted", "latest=2.1.0", "Checked 1 sources"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("verbose log missing %q:\n%s", want, logs.String())
		}
	}
}

func TestLatestLogsSummaryWithoutDebug(t *testing.T) {
	captureUI(t)

	server := serveFiles(t, map[string]string{
		"/notes": `<p>Versie 2.1.0</p>`,
	})
	catalog := writeFile(t, "sources.toml", `
[[source]]
name = "Notes"
kind = "releasenotes"
locator = "`+server.URL+`/notes"
`)

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"latest", "--config", catalog})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("latest: %v", err)
	}

	if !strings.Contains(logs.String(), "Checked 1 sources") {
		t.Errorf("summary missing:\n%s", logs.String())
	}
	if strings.Contains(logs.String(), "http request") {
		t.Errorf("debug lines without --verbose:\n%s", logs.String())
	}
}
