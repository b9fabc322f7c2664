package api

import (
	"encoding/json"
	"net/http"
)

// ChartHandler handles chart-generation requests.
type ChartHandler struct {
	deps Dependencies
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies) *ChartHandler {
	return &ChartHandler{deps: deps}
}

// HandleChart handles POST /v1/chart requests.
func (h *ChartHandler) HandleChart(w http.ResponseWriter, r *http.Request) {
	var req birthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}

	result, err := h.deps.BuildChart(r.Context(), req.toInput())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
