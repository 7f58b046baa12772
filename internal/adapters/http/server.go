// Package http exposes the gallery over a JSON API: listing demos,
// triggering runs, and serving stored transcripts.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/demo"
	"github.com/aretw0/espalier/pkg/ports"
)

// Gallery defines the interface for the Espalier gallery core.
type Gallery interface {
	Demos() []demo.Demo
	Run(ctx context.Context, name string, out io.Writer) (*demo.Transcript, error)
}

// Server wires the gallery and the transcript store behind a chi router.
type Server struct {
	gallery Gallery
	store   ports.TranscriptStore
	logger  *slog.Logger
}

// NewHandler creates the HTTP handler. The metrics handler is optional;
// when non-nil it is mounted at /metrics.
func NewHandler(gallery Gallery, store ports.TranscriptStore, logger *slog.Logger, metrics http.Handler) http.Handler {
	s := &Server{
		gallery: gallery,
		store:   store,
		logger:  logger,
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/demos", s.handleListDemos)
	r.Post("/demos/{name}/run", s.handleRunDemo)
	r.Get("/runs", s.handleListRuns)
	r.Get("/runs/{id}", s.handleGetRun)
	if metrics != nil {
		r.Handle("/metrics", metrics)
	}
	return r
}

type demoInfo struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"name":    "espalier",
		"version": strings.TrimSpace(espalier.Version),
	})
}

func (s *Server) handleListDemos(w http.ResponseWriter, r *http.Request) {
	demos := s.gallery.Demos()
	infos := make([]demoInfo, 0, len(demos))
	for _, d := range demos {
		infos = append(infos, demoInfo{Name: d.Name(), Summary: d.Summary()})
	}
	s.writeJSON(w, http.StatusOK, infos)
}

func (s *Server) handleRunDemo(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	// Headless run: the transcript carries the narration.
	transcript, err := s.gallery.Run(r.Context(), name, io.Discard)
	if err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.store.Save(r.Context(), transcript.RunID, transcript); err != nil {
		s.logger.Error("failed to persist transcript", "run_id", transcript.RunID, "error", err)
		s.writeError(w, err)
		return
	}

	s.logger.Info("demo run", "demo", name, "run_id", transcript.RunID, "lines", len(transcript.Lines))
	s.writeJSON(w, http.StatusCreated, transcript)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"runs": runs})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	transcript, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, transcript)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, demo.ErrDemoNotFound) || errors.Is(err, demo.ErrRunNotFound) {
		status = http.StatusNotFound
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
