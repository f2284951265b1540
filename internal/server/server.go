// Package server exposes the version checks and release comparison over a
// read-only HTTP API.
//
//	GET /healthz
//	GET /api/v1/latest
//	GET /api/v1/latest/{name}
//	GET /api/v1/components?version=&branch=
//	GET /api/v1/compare?old=&new=&branch=&dependencies=&include_added=
//
// Every request fetches upstream pages again unless the integrations
// options carry a cache.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/podiumd/versionwatch/internal/config"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/manifest"
)

const shutdownTimeout = 10 * time.Second

// Config wires the server to its collaborators.
type Config struct {
	Catalog *config.Catalog
	Builder *manifest.Builder
	Options integrations.Options
	Logger  *log.Logger
}

// Server is the HTTP API.
type Server struct {
	Router  *chi.Mux
	catalog *config.Catalog
	builder *manifest.Builder
	opts    integrations.Options
	logger  *log.Logger
}

// New creates a Server with its routes registered.
func New(cfg Config) *Server {
	s := &Server{
		Router:  chi.NewRouter(),
		catalog: cfg.Catalog,
		builder: cfg.Builder,
		opts:    cfg.Options,
		logger:  cfg.Logger,
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if s.catalog == nil {
		s.catalog = &config.Catalog{}
	}
	if s.builder == nil {
		s.builder = manifest.NewBuilder(cfg.Options)
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.Router.Use(chiMiddleware.RealIP)
	s.Router.Use(chiMiddleware.RequestID)
	s.Router.Use(s.requestLogger)
	s.Router.Use(chiMiddleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.Router.Get("/healthz", s.health)

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Get("/latest", s.listLatest)
		r.Get("/latest/{name}", s.getLatest)
		r.Get("/components", s.components)
		r.Get("/compare", s.compare)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", chiMiddleware.GetReqID(r.Context()))
	})
}
