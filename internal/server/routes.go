package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/folio/internal/export"
	"github.com/ziadkadry99/folio/internal/portfolio"
	"github.com/ziadkadry99/folio/internal/profile"
)

// maxRequestBytes bounds request bodies on the generation endpoints.
const maxRequestBytes = 1 << 20

// previewCSP isolates the preview document from the service's origin while
// letting the page's own script run.
const previewCSP = "sandbox allow-scripts"

// generateRequest is the body of the generation endpoints.
type generateRequest struct {
	Profile  json.RawMessage `json:"profile"`
	Template string          `json:"template"`
	Escaping string          `json:"escaping,omitempty"`
	Markdown *bool           `json:"markdown,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) registerAPI(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", handleTemplates)
		r.Post("/generate", s.handleGenerate)
		r.Post("/preview", s.handlePreview)
		r.Post("/export/{kind}", s.handleExport)
	})
}

func handleTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, portfolio.Catalog())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	a, _, ok := s.generateFromRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	a, _, ok := s.generateFromRequest(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Security-Policy", previewCSP)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.Standalone(a)))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	kindParam := chi.URLParam(r, "kind")
	var kind export.Kind
	if kindParam != "zip" {
		k, err := export.ParseKind(kindParam)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		kind = k
	}

	a, at, ok := s.generateFromRequest(w, r)
	if !ok {
		return
	}

	if kindParam == "zip" {
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", `attachment; filename="portfolio.zip"`)
		w.WriteHeader(http.StatusOK)
		if err := export.WriteZip(w, a, at); err != nil {
			log.Printf("preview: writing archive: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", export.ContentType(kind))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(kind)))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(export.Content(a, kind)))
}

// generateFromRequest decodes, checks and renders the request profile. It
// writes the error response itself and reports false on failure.
func (s *Server) generateFromRequest(w http.ResponseWriter, r *http.Request) (portfolio.Artifact, time.Time, bool) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body: " + err.Error()})
		return portfolio.Artifact{}, time.Time{}, false
	}

	opts, err := s.requestOptions(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return portfolio.Artifact{}, time.Time{}, false
	}

	p, err := profile.Decode(req.Profile)
	if err == nil {
		err = profile.Validate(p)
	}
	if err != nil {
		var ve *profile.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, ve)
		} else {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return portfolio.Artifact{}, time.Time{}, false
	}

	a, err := portfolio.Generate(*p, req.Template, opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return portfolio.Artifact{}, time.Time{}, false
	}
	return a, opts.GeneratedAt, true
}

// requestOptions starts from the server generator's settings and applies
// the per-request overrides.
func (s *Server) requestOptions(req generateRequest) (portfolio.Options, error) {
	now := time.Now
	if s.gen.Now != nil {
		now = s.gen.Now
	}
	opts := portfolio.Options{
		GeneratedAt: now(),
		Escaping:    s.gen.Escaping,
		Markdown:    s.gen.Markdown,
	}
	if req.Escaping != "" {
		mode, err := portfolio.ParseEscapeMode(req.Escaping)
		if err != nil {
			return opts, err
		}
		opts.Escaping = mode
	}
	if req.Markdown != nil {
		opts.Markdown = *req.Markdown
	}
	return opts, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
