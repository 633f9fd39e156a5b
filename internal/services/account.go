package services

import (
	"errors"
	"fmt"

	"wednest/internal/models"
	"wednest/internal/utils"
)

// AccountService handles registration and authentication across the two
// account collections. An email address is unique across couples AND vendors.
type AccountService struct {
	coupleRepo CoupleRepository
	vendorRepo VendorRepository
	tokens     TokenIssuer
}

// NewAccountService creates a new account service
func NewAccountService(coupleRepo CoupleRepository, vendorRepo VendorRepository, tokens TokenIssuer) *AccountService {
	return &AccountService{
		coupleRepo: coupleRepo,
		vendorRepo: vendorRepo,
		tokens:     tokens,
	}
}

// RegisterRequest represents an account registration request
type RegisterRequest struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	UserType models.UserType `json:"user_type"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned after a successful login
type LoginResponse struct {
	UserID   string          `json:"user_id"`
	UserType models.UserType `json:"user_type"`
	Token    string          `json:"token"`
}

// Register creates a new couple or vendor account. The email must not exist
// in either collection; the explicit two-query check gives the friendly
// error, the unique constraint closes the race.
func (s *AccountService) Register(req *RegisterRequest) error {
	if req.Username == "" || req.Email == "" || req.Password == "" || req.UserType == "" {
		return models.NewValidationError("All fields are required")
	}
	if !models.ValidUserType(req.UserType) {
		return models.NewValidationError("Invalid user type. Must be 'Couple' or 'Vendor'")
	}
	if !models.ValidEmail(req.Email) {
		return models.NewValidationError("Invalid email format")
	}

	coupleExists, err := s.coupleRepo.EmailExists(req.Email)
	if err != nil {
		return fmt.Errorf("failed to check couple emails: %w", err)
	}
	vendorExists, err := s.vendorRepo.EmailExists(req.Email)
	if err != nil {
		return fmt.Errorf("failed to check vendor emails: %w", err)
	}
	if coupleExists || vendorExists {
		return models.NewConflictError("Email already exists")
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	switch req.UserType {
	case models.UserTypeCouple:
		_, err = s.coupleRepo.Create(req.Username, req.Email, passwordHash)
	case models.UserTypeVendor:
		_, err = s.vendorRepo.Create(req.Username, req.Email, passwordHash)
	}
	if err != nil {
		return err
	}

	return nil
}

// Login verifies credentials against couples first, then vendors. Unknown
// email and wrong password produce the same error so accounts cannot be
// enumerated.
func (s *AccountService) Login(req *LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	couple, err := s.coupleRepo.GetByEmail(req.Email)
	if err == nil {
		return s.finishLogin(couple.ID.String(), models.UserTypeCouple, req.Password, couple.PasswordHash)
	}
	var notFound *models.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up couple: %w", err)
	}

	vendor, err := s.vendorRepo.GetByEmail(req.Email)
	if err == nil {
		return s.finishLogin(vendor.ID.String(), models.UserTypeVendor, req.Password, vendor.PasswordHash)
	}
	if !errors.As(err, &notFound) {
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}

	return nil, models.NewAuthError("Invalid email or password")
}

func (s *AccountService) finishLogin(userID string, userType models.UserType, password, passwordHash string) (*LoginResponse, error) {
	ok, err := utils.VerifyPassword(password, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, models.NewAuthError("Invalid email or password")
	}

	token, err := s.tokens.Issue(userID, userType)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		UserID:   userID,
		UserType: userType,
		Token:    token,
	}, nil
}
