package handlers

import "net/http"

// HealthResponse is the liveness body
// swagger:model HealthResponse
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthHandler returns a liveness endpoint.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
