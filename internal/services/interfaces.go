package services

import (
	"github.com/google/uuid"

	"wednest/internal/models"
)

// CoupleRepository interface for couple data operations
type CoupleRepository interface {
	Create(username, email, passwordHash string) (*models.Couple, error)
	GetByID(id uuid.UUID) (*models.Couple, error)
	GetByEmail(email string) (*models.Couple, error)
	EmailExists(email string) (bool, error)
	Update(id uuid.UUID, req *models.CoupleUpdateRequest) (*models.Couple, error)
	GetBookedVendors(coupleID uuid.UUID) ([]models.BookedVendor, error)
}

// VendorRepository interface for vendor data operations
type VendorRepository interface {
	Create(username, email, passwordHash string) (*models.Vendor, error)
	GetByID(id uuid.UUID) (*models.Vendor, error)
	GetByEmail(email string) (*models.Vendor, error)
	EmailExists(email string) (bool, error)
	Update(id uuid.UUID, req *models.VendorUpdateRequest) (*models.Vendor, error)
	ListByType(vendorType string) ([]*models.Vendor, error)
}

// RequestRepository interface for service-request data operations
type RequestRepository interface {
	Create(coupleID, vendorID uuid.UUID) (*models.Request, error)
	GetByID(id uuid.UUID) (*models.Request, error)
	ListForCouple(coupleID uuid.UUID) ([]*models.Request, error)
	ListForVendor(vendorID uuid.UUID) ([]*models.Request, error)
	FindByPair(coupleID, vendorID uuid.UUID) (*models.Request, error)
	SetStatus(id uuid.UUID, status models.RequestStatus) (*models.Request, error)
}

// CartRepository interface for cart data operations
type CartRepository interface {
	AddItem(req *models.AddItemRequest) (*models.Cart, error)
	RemoveItemByVendor(coupleID, vendorID uuid.UUID) error
	GetByCoupleID(coupleID uuid.UUID) (*models.Cart, error)
}

// TokenIssuer issues signed session tokens after a successful login
type TokenIssuer interface {
	Issue(userID string, userType models.UserType) (string, error)
}
