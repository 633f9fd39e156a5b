package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wednest/internal/models"
	"wednest/internal/services"
)

// RequestHandler serves the service-request workflow
type RequestHandler struct {
	requests *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requests *services.RequestService) *RequestHandler {
	return &RequestHandler{requests: requests}
}

type sendRequestBody struct {
	CoupleID string `json:"couple_id"`
	VendorID string `json:"vendor_id"`
}

// Send handles POST /api/request
func (h *RequestHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body sendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, models.NewValidationError("Invalid request body"))
		return
	}
	if body.CoupleID == "" || body.VendorID == "" {
		respondError(w, models.NewValidationError("couple_id and vendor_id are required"))
		return
	}

	coupleID, err := models.ParseID(body.CoupleID)
	if err != nil {
		respondError(w, err)
		return
	}
	vendorID, err := models.ParseID(body.VendorID)
	if err != nil {
		respondError(w, err)
		return
	}

	request, err := h.requests.Send(coupleID, vendorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusCreated, "Request sent successfully", request)
}

// ListForCouple handles GET /api/couple/requests/{couple_id}
func (h *RequestHandler) ListForCouple(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "couple_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	requests, err := h.requests.ListForCouple(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, requests)
}

// ListForVendor handles GET /api/vendor/requests/{vendor_id}
func (h *RequestHandler) ListForVendor(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "vendor_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	requests, err := h.requests.ListForVendor(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, requests)
}

// ResolveID handles GET /api/request-id?couple_id=&vendor_id=, returning the
// most recent request between the pair.
func (h *RequestHandler) ResolveID(w http.ResponseWriter, r *http.Request) {
	coupleID, err := models.ParseID(r.URL.Query().Get("couple_id"))
	if err != nil {
		respondError(w, err)
		return
	}
	vendorID, err := models.ParseID(r.URL.Query().Get("vendor_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	request, err := h.requests.Resolve(coupleID, vendorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{
		"request_id": request.ID,
		"status":     request.Status,
	})
}

type respondBody struct {
	Status string `json:"status"`
}

// Respond handles PUT /api/request/{request_id}, the vendor's accept/decline
func (h *RequestHandler) Respond(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "request_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	var body respondBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, models.NewValidationError("Invalid request body"))
		return
	}

	request, err := h.requests.Respond(id, body.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusOK, "Request status updated", request)
}
