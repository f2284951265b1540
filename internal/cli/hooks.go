package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks routes observability events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnExtractStart(_ context.Context, source string) {
	h.logger.Debug("extract", "source", source)
}

func (h *logHooks) OnExtractComplete(_ context.Context, source string, candidates int, latest string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("extract failed", "source", source, "err", err)
		return
	}
	if latest == "" {
		latest = "-"
	}
	h.logger.Debug("extracted", "source", source, "candidates", candidates, "latest", latest,
		"duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, namespace string) {
	h.logger.Debug("cache hit", "namespace", namespace)
}

func (h *logHooks) OnCacheMiss(_ context.Context, namespace string) {
	h.logger.Debug("cache miss", "namespace", namespace)
}

func (h *logHooks) OnCacheSet(_ context.Context, namespace string, size int) {
	h.logger.Debug("cache set", "namespace", namespace, "bytes", size)
}

func (h *logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", status,
		"duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
