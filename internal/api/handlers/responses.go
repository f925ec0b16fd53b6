// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"itemhub/internal/models"
	"net/http"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddItemResponse is returned by POST /items.
type AddItemResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// ItemsResponse wraps a list of denormalized items.
type ItemsResponse struct {
	Items []models.Item `json:"items"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
