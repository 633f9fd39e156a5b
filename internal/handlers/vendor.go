package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"wednest/internal/models"
	"wednest/internal/services"
)

// VendorHandler serves vendor profile, dashboard and discovery reads
type VendorHandler struct {
	profiles *services.ProfileService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(profiles *services.ProfileService) *VendorHandler {
	return &VendorHandler{profiles: profiles}
}

// GetProfile handles GET /api/vendor/profile/{vendor_id} and
// GET /api/vendor/details/{vendor_id}
func (h *VendorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "vendor_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	vendor, err := h.profiles.GetVendorProfile(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, vendor)
}

// UpdateProfile handles PUT /api/vendor/profile. The body is multipart:
// partial text fields plus an optional profileImage file and up to five
// serviceImages files.
func (h *VendorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		respondError(w, models.NewValidationError("Invalid multipart form"))
		return
	}

	id, err := models.ParseID(r.FormValue("user_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	req := &models.VendorUpdateRequest{}
	if v := r.FormValue("business_name"); v != "" {
		req.BusinessName = &v
	}
	if v := r.FormValue("vendor_type"); v != "" {
		req.VendorType = &v
	}
	if v := r.FormValue("contact_number"); v != "" {
		req.ContactNumber = &v
	}
	if v := r.FormValue("location"); v != "" {
		req.Location = &v
	}
	if v := r.FormValue("pricing"); v != "" {
		pricing, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respondError(w, models.NewValidationError("Invalid pricing value"))
			return
		}
		req.Pricing = &pricing
	}
	if v := r.FormValue("service_description"); v != "" {
		req.ServiceDescription = &v
	}

	var profileImage *services.FileUpload
	if file, header, err := r.FormFile("profileImage"); err == nil {
		defer file.Close()
		profileImage = &services.FileUpload{Reader: file, Filename: header.Filename}
	}

	var serviceImages []*services.FileUpload
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["serviceImages"] {
			file, err := header.Open()
			if err != nil {
				respondError(w, models.NewValidationError("Invalid service image upload"))
				return
			}
			defer file.Close()
			serviceImages = append(serviceImages, &services.FileUpload{Reader: file, Filename: header.Filename})
		}
	}

	vendor, err := h.profiles.UpdateVendorProfile(r.Context(), id, req, profileImage, serviceImages)
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusOK, "Profile updated successfully", vendor)
}

// Dashboard handles GET /api/vendor/dashboard/{user_id}
func (h *VendorHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "user_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	dashboard, err := h.profiles.GetVendorDashboard(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, dashboard)
}

// ListByType handles GET /api/vendors/type/{vendorType}
func (h *VendorHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.profiles.ListVendorsByType(chi.URLParam(r, "vendorType"))
	if err != nil {
		respondError(w, err)
		return
	}

	respondData(w, http.StatusOK, vendors)
}
