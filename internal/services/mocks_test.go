package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"wednest/internal/models"
)

// MockCoupleRepository is a mock implementation of CoupleRepository
type MockCoupleRepository struct {
	mock.Mock
}

func (m *MockCoupleRepository) Create(username, email, passwordHash string) (*models.Couple, error) {
	args := m.Called(username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Couple), args.Error(1)
}

func (m *MockCoupleRepository) GetByID(id uuid.UUID) (*models.Couple, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Couple), args.Error(1)
}

func (m *MockCoupleRepository) GetByEmail(email string) (*models.Couple, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Couple), args.Error(1)
}

func (m *MockCoupleRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockCoupleRepository) Update(id uuid.UUID, req *models.CoupleUpdateRequest) (*models.Couple, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Couple), args.Error(1)
}

func (m *MockCoupleRepository) GetBookedVendors(coupleID uuid.UUID) ([]models.BookedVendor, error) {
	args := m.Called(coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookedVendor), args.Error(1)
}

// MockVendorRepository is a mock implementation of VendorRepository
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(username, email, passwordHash string) (*models.Vendor, error) {
	args := m.Called(username, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByID(id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByEmail(email string) (*models.Vendor, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockVendorRepository) Update(id uuid.UUID, req *models.VendorUpdateRequest) (*models.Vendor, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) ListByType(vendorType string) ([]*models.Vendor, error) {
	args := m.Called(vendorType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Vendor), args.Error(1)
}

// MockRequestRepository is a mock implementation of RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Create(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	args := m.Called(coupleID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestRepository) GetByID(id uuid.UUID) (*models.Request, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestRepository) ListForCouple(coupleID uuid.UUID) ([]*models.Request, error) {
	args := m.Called(coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Request), args.Error(1)
}

func (m *MockRequestRepository) ListForVendor(vendorID uuid.UUID) ([]*models.Request, error) {
	args := m.Called(vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Request), args.Error(1)
}

func (m *MockRequestRepository) FindByPair(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	args := m.Called(coupleID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

func (m *MockRequestRepository) SetStatus(id uuid.UUID, status models.RequestStatus) (*models.Request, error) {
	args := m.Called(id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Request), args.Error(1)
}

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) AddItem(req *models.AddItemRequest) (*models.Cart, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

func (m *MockCartRepository) RemoveItemByVendor(coupleID, vendorID uuid.UUID) error {
	args := m.Called(coupleID, vendorID)
	return args.Error(0)
}

func (m *MockCartRepository) GetByCoupleID(coupleID uuid.UUID) (*models.Cart, error) {
	args := m.Called(coupleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cart), args.Error(1)
}

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(userID string, userType models.UserType) (string, error) {
	args := m.Called(userID, userType)
	return args.String(0), args.Error(1)
}

// MockImageUploader is a mock implementation of ImageUploader
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) UploadImage(ctx context.Context, reader io.Reader, filename string) (string, error) {
	args := m.Called(ctx, reader, filename)
	return args.String(0), args.Error(1)
}

func (m *MockImageUploader) RemoveImage(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
