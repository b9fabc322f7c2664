package api

import (
	"encoding/json"
	"net/http"
)

// CompatibilityHandler handles Guna Milan requests.
type CompatibilityHandler struct {
	deps Dependencies
}

// NewCompatibilityHandler creates a new compatibility handler.
func NewCompatibilityHandler(deps Dependencies) *CompatibilityHandler {
	return &CompatibilityHandler{deps: deps}
}

// HandleCompatibility handles POST /v1/compatibility requests.
func (h *CompatibilityHandler) HandleCompatibility(w http.ResponseWriter, r *http.Request) {
	var req compatibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := req.Person1.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}
	if err := req.Person2.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_input", err)
		return
	}

	result, err := h.deps.MatchCharts(r.Context(), req.Person1.toInput(), req.Person2.toInput())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
