package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wednest/internal/models"
)

// Response is the JSON envelope used by every endpoint
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondData(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, Response{Status: "success", Data: data})
}

func respondMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, Response{Status: "success", Message: message})
}

func respondDataMessage(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, Response{Status: "success", Message: message, Data: data})
}

// respondError maps the error taxonomy to HTTP statuses. Anything outside the
// taxonomy is an internal failure: logged in full, reported generically.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError
	var authErr *models.AuthError
	var conflictErr *models.ConflictError
	var notFoundErr *models.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, Response{Status: "error", Message: validationErr.Message})
	case errors.As(err, &authErr):
		writeJSON(w, http.StatusBadRequest, Response{Status: "error", Message: authErr.Message})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusBadRequest, Response{Status: "error", Message: conflictErr.Message})
	case errors.As(err, &notFoundErr):
		writeJSON(w, http.StatusNotFound, Response{Status: "error", Message: notFoundErr.Error()})
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, Response{Status: "error", Message: "Server error"})
	}
}
