package services

import (
	"errors"

	"github.com/google/uuid"

	"wednest/internal/models"
)

// CartService handles the couple's cart. Each couple has at most one cart,
// created on first add; its total must always equal the sum of item prices.
type CartService struct {
	cartRepo CartRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo CartRepository) *CartService {
	return &CartService{cartRepo: cartRepo}
}

// AddItem appends a line item to the couple's cart, creating the cart when
// the couple has none. Duplicate (vendor, service type) pairs are allowed as
// distinct lines.
func (s *CartService) AddItem(req *models.AddItemRequest) (*models.Cart, error) {
	if req.ServiceType == "" {
		return nil, models.NewValidationError("Service type is required")
	}
	if req.Price <= 0 {
		return nil, models.NewValidationError("Price must be greater than zero")
	}

	return s.cartRepo.AddItem(req)
}

// RemoveItem removes the oldest cart item referencing the vendor. Items the
// vendor has confirmed cannot be removed.
func (s *CartService) RemoveItem(coupleID, vendorID uuid.UUID) error {
	return s.cartRepo.RemoveItemByVendor(coupleID, vendorID)
}

// GetCart returns the couple's cart. A couple who has never added an item
// gets an empty cart, not an error.
func (s *CartService) GetCart(coupleID uuid.UUID) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByCoupleID(coupleID)
	if err != nil {
		var notFound *models.NotFoundError
		if errors.As(err, &notFound) {
			return &models.Cart{
				CoupleID: coupleID,
				Items:    []models.CartItem{},
			}, nil
		}
		return nil, err
	}

	return cart, nil
}
