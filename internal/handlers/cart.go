package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wednest/internal/models"
	"wednest/internal/services"
)

// CartHandler serves the couple's cart
type CartHandler struct {
	carts *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type addItemBody struct {
	CoupleID    string  `json:"couple_id"`
	VendorID    string  `json:"vendor_id"`
	ServiceType string  `json:"service_type"`
	Price       float64 `json:"price"`
	RequestID   string  `json:"request_id"`
}

// Add handles POST /api/cart/add
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body addItemBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, models.NewValidationError("Invalid request body"))
		return
	}
	if body.CoupleID == "" || body.VendorID == "" || body.RequestID == "" {
		respondError(w, models.NewValidationError("couple_id, vendor_id and request_id are required"))
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
	requestID, err := models.ParseID(body.RequestID)
	if err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.carts.AddItem(&models.AddItemRequest{
		CoupleID:    coupleID,
		VendorID:    vendorID,
		ServiceType: body.ServiceType,
		Price:       body.Price,
		RequestID:   requestID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondDataMessage(w, http.StatusCreated, "Item added to cart", cart)
}

// Get handles GET /api/cart/{couple_id}. An empty or absent cart is a
// success, not an error.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseID(chi.URLParam(r, "couple_id"))
	if err != nil {
		respondError(w, err)
		return
	}

	cart, err := h.carts.GetCart(id)
	if err != nil {
		respondError(w, err)
		return
	}

	if len(cart.Items) == 0 {
		respondDataMessage(w, http.StatusOK, "No items in cart.", cart)
		return
	}

	respondData(w, http.StatusOK, cart)
}

type removeItemBody struct {
	CoupleID string `json:"couple_id"`
	VendorID string `json:"vendor_id"`
}

// Remove handles DELETE /api/cart/remove
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var body removeItemBody
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

	if err := h.carts.RemoveItem(coupleID, vendorID); err != nil {
		respondError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Item removed from cart")
}
