package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/podiumd/versionwatch/internal/config"
	"github.com/podiumd/versionwatch/pkg/buildinfo"
	"github.com/podiumd/versionwatch/pkg/compare"
	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/integrations"
	"github.com/podiumd/versionwatch/pkg/manifest"
)

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) listLatest(w http.ResponseWriter, r *http.Request) {
	results, err := config.Check(r.Context(), s.catalog.Sources, s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) getLatest(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, ok := s.catalog.Lookup(name)
	if !ok {
		s.writeError(w, errs.New(errs.ErrCodeSourceNotFound, "unknown source: %s", name))
		return
	}
	result, err := spec.Check(r.Context(), s.opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) components(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v, err := s.builder.Build(r.Context(), manifest.Ref{Version: q.Get("version"), Branch: q.Get("branch")})
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) compare(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	oldVersion := q.Get("old")
	if oldVersion == "" {
		s.writeError(w, errs.New(errs.ErrCodeInvalidInput, "query parameter old is required"))
		return
	}

	old, err := s.builder.Build(r.Context(), manifest.Ref{Version: oldVersion})
	if err != nil {
		s.writeError(w, err)
		return
	}
	updated, err := s.builder.Build(r.Context(), manifest.Ref{Version: q.Get("new"), Branch: q.Get("branch")})
	if err != nil {
		s.writeError(w, err)
		return
	}

	opts := compare.Options{IncludeAdded: boolParam(q.Get("include_added"))}
	body := compare.RenderDiffTable(old, updated, opts)
	if boolParam(q.Get("dependencies")) {
		body += "\n" + compare.RenderDependencyTable(old, updated, opts)
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func boolParam(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}

// statusFor maps an error to an HTTP status. Anything that is not a client
// mistake or a missing resource is treated as an upstream failure.
func statusFor(err error) int {
	switch errs.GetCode(err) {
	case errs.ErrCodeInvalidInput, errs.ErrCodeInvalidRef:
		return http.StatusBadRequest
	case errs.ErrCodeSourceNotFound, errs.ErrCodeNotFound:
		return http.StatusNotFound
	case errs.ErrCodeInvalidConfig, errs.ErrCodeInternal:
		return http.StatusInternalServerError
	}
	if errors.Is(err, integrations.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{Error: errs.UserMessage(err), Code: string(errs.GetCode(err))})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
