package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// writeJSON writes a JSON body with the given status.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
