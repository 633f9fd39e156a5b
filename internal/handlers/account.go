package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wednest/internal/models"
	"wednest/internal/services"
)

// StorageHealthChecker reports whether the image storage backend is reachable
type StorageHealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// AccountHandler serves registration, login, logout and the health endpoint
type AccountHandler struct {
	accounts *services.AccountService
	storage  StorageHealthChecker
}

// NewAccountHandler creates a new account handler. The storage checker is
// optional; without one the health endpoint only reports the server itself.
func NewAccountHandler(accounts *services.AccountService, storage StorageHealthChecker) *AccountHandler {
	return &AccountHandler{accounts: accounts, storage: storage}
}

// Register handles POST /api/register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, models.NewValidationError("Invalid request body"))
		return
	}

	if err := h.accounts.Register(&req); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusCreated, fmt.Sprintf("%s registered successfully", req.UserType))
}

// Login handles POST /api/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, models.NewValidationError("Invalid request body"))
		return
	}

	resp, err := h.accounts.Login(&req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusOK, "Login successful", resp)
}

// Logout handles POST /api/logout. Sessions are stateless bearer tokens, so
// this only acknowledges; the token stays valid until it expires.
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// Health handles GET /health
func (h *AccountHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "healthy"}
	if h.storage != nil {
		status["storage"] = "healthy"
		if err := h.storage.HealthCheck(r.Context()); err != nil {
			status["storage"] = "unavailable"
		}
	}
	respondData(w, http.StatusOK, status)
}
