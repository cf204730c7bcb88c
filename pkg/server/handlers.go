package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/treestore-dev/treestore/pkg/store"
)

// handleGetState returns the whole state tree.
//
// The JSON encoder walks the live tree; a writer mutating concurrently can
// race with the read, which is the same contract in-process readers have.
func (s *Server) handleGetState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.store.State())
}

// handleGetPath resolves one dotted path. Absent maps to 404, never a crash.
func (s *Server) handleGetPath(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "path")

	v := s.store.Get(path)
	if store.IsAbsent(v) {
		writeError(w, NotFound("path not found: "+path))
		return
	}
	writeJSON(w, map[string]any{"path": path, "value": v})
}

// handleSetPartial shallow-merges the JSON object body into the state and
// opens a flush window.
func (s *Server) handleSetPartial(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "store.set_partial")
	defer span.End()

	var fork map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fork); err != nil {
		writeError(w, BadRequest(err))
		return
	}
	span.SetAttributes(attribute.Int("store.fork_keys", len(fork)))

	s.store.SetPartial(fork)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFlush(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "store.request_flush")
	defer span.End()

	s.store.RequestFlush()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	_, span := s.tracer.Start(r.Context(), "store.reset")
	defer span.End()

	s.store.Reset()
	w.WriteHeader(http.StatusNoContent)
}
