// Package api - Thin, deterministic HTTP layer
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs forecast logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"charter-forecast/core/engine"
	"charter-forecast/internal/errors"
	"charter-forecast/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		engine:  engine.New(),
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /forecast", s.handleForecast)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleForecast handles POST /forecast
func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	result, err := s.engine.Run(req.Assumptions())
	if err != nil {
		s.writeRunError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, &ForecastResponse{
		Result:     result,
		DurationMS: time.Since(start).Milliseconds(),
		Version:    s.version,
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// writeRunError maps domain errors onto HTTP statuses
func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.Error); ok {
		status := http.StatusInternalServerError
		switch e.Type {
		case errors.TypeParameter:
			status = http.StatusBadRequest
		case errors.TypeAllocation:
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, string(e.Type), e.Message, e.Context, status)
		return
	}
	s.writeError(w, string(errors.TypeInternal), err.Error(), nil, http.StatusInternalServerError)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, context map[string]interface{}, status int) {
	logging.Warn("request failed", zap.String("code", code), zap.String("message", message))
	s.writeJSON(w, status, &ErrorResponse{Code: code, Message: message, Context: context})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}
