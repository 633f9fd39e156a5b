package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"wednest/internal/models"
	"wednest/internal/services"
)

const maxMultipartMemory = 32 << 20 // 32 MB

// CoupleHandler serves couple profile, dashboard and budget reads
type CoupleHandler struct {
	profiles *services.ProfileService
}

// NewCoupleHandler creates a new couple handler
func NewCoupleHandler(profiles *services.ProfileService) *CoupleHandler {
	return &CoupleHandler{profiles: profiles}
}

// GetProfile handles GET /api/couple/profile/{user_id}
func (h *CoupleHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	couple, err := h.profiles.GetCoupleProfile(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, couple)
}

// UpdateProfile handles PUT /api/couple/profile. The body is multipart:
// partial text fields plus an optional profileImage file.
func (h *CoupleHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, models.NewValidationError("Invalid multipart form"))
		return
	}

	id, err := models.ParseID(r.FormValue("user_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	req := &models.CoupleUpdateRequest{}
	if v := r.FormValue("username"); v != "" {
		req.Username = &v
	}
	if v := r.FormValue("contact_number"); v != "" {
		req.ContactNumber = &v
	}
	if v := r.FormValue("wedding_date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			respondError(w, models.NewValidationError("Invalid wedding date. Use YYYY-MM-DD"))
			return
		}
		req.WeddingDate = &date
	}
	if v := r.FormValue("budget"); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, models.NewValidationError("Invalid budget value"))
			return
		}
		req.Budget = &budget
	}

	var image *services.FileUpload
	if file, header, err := r.FormFile("profileImage"); err == nil {
		defer file.Close()
		image = &services.FileUpload{Reader: file, Filename: header.Filename}
	}

	couple, err := h.profiles.UpdateCoupleProfile(r.Context(), id, req, image)
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusOK, "Profile updated successfully", couple)
}

// Dashboard handles GET /api/couple/dashboard/{user_id}
func (h *CoupleHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	dashboard, err := h.profiles.GetCoupleDashboard(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, dashboard)
}

// Budget handles GET /api/couple/budget/{couple_id}. This is the couple's
// declared overall budget, not the cart total.
func (h *CoupleHandler) Budget(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "couple_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	budget, err := h.profiles.GetCoupleBudget(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]float64{"budget": budget})
}
