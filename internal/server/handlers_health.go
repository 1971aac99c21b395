package server

import (
	"net/http"

	"github.com/cloud-abstraction-layer/cal/internal/constants"

	json "github.com/goccy/go-json"
)

// HealthResponse is the body of the health probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// handleHealth returns a simple health check response.
func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set(constants.HeaderContentType, "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Version: *constants.GetVersion(),
	})
}
