// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vedanga/jyoti/internal/app"
	"github.com/vedanga/jyoti/internal/domain/astrotime"
	"github.com/vedanga/jyoti/internal/domain/ephemeris"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	BuildChart(ctx context.Context, in app.BirthInput) (*app.ChartResult, error)
	MatchCharts(ctx context.Context, person1, person2 app.BirthInput) (*app.MatchResult, error)
}

// StatsProvider exposes service statistics for the stats endpoint.
type StatsProvider interface {
	GetStats() map[string]any
}

// Server wires HTTP routes for the business API.
type Server struct {
	chartHandler         *ChartHandler
	compatibilityHandler *CompatibilityHandler
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, stats StatsProvider) *Server {
	return &Server{
		chartHandler:         NewChartHandler(deps),
		compatibilityHandler: NewCompatibilityHandler(deps),
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(stats),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Post("/v1/chart", MetricsMiddleware(s.chartHandler.HandleChart, "chart"))
	r.Post("/v1/compatibility", MetricsMiddleware(s.compatibilityHandler.HandleCompatibility, "compatibility"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidInput), errors.Is(err, astrotime.ErrInvalidDate):
		writeError(w, http.StatusBadRequest, "invalid_input", err)
	case errors.Is(err, ephemeris.ErrOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, "out_of_range", err)
	case errors.Is(err, app.ErrNotStarted), errors.Is(err, ephemeris.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
