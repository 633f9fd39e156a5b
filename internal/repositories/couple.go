package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wednest/internal/models"
)

// CoupleRepository handles couple account data operations
type CoupleRepository struct {
	db *sql.DB
}

// NewCoupleRepository creates a new couple repository
func NewCoupleRepository(db *sql.DB) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// Create persists a new couple account. The password must already be hashed.
func (r *CoupleRepository) Create(username, email, passwordHash string) (*models.Couple, error) {
	query := `
		INSERT INTO couples (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, username, email, contact_number, profile_image, budget, wedding_date, created_at, updated_at`

	couple := &models.Couple{}
	err := r.db.QueryRow(query, uuid.New(), username, email, passwordHash, time.Now()).Scan(
		&couple.ID,
		&couple.Username,
		&couple.Email,
		&couple.ContactNumber,
		&couple.ProfileImage,
		&couple.Budget,
		&couple.WeddingDate,
		&couple.CreatedAt,
		&couple.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.NewConflictError("Email already exists")
		}
		return nil, fmt.Errorf("failed to create couple: %w", err)
	}

	return couple, nil
}

// GetByID retrieves a couple by id
func (r *CoupleRepository) GetByID(id uuid.UUID) (*models.Couple, error) {
	query := `
		SELECT id, username, email, password_hash, contact_number, profile_image, budget, wedding_date, created_at, updated_at
		FROM couples
		WHERE id = $1`

	couple := &models.Couple{}
	err := r.db.QueryRow(query, id).Scan(
		&couple.ID,
		&couple.Username,
		&couple.Email,
		&couple.PasswordHash,
		&couple.ContactNumber,
		&couple.ProfileImage,
		&couple.Budget,
		&couple.WeddingDate,
		&couple.CreatedAt,
		&couple.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Couple not found")
		}
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}

	return couple, nil
}

// GetByEmail retrieves a couple by email (for authentication)
func (r *CoupleRepository) GetByEmail(email string) (*models.Couple, error) {
	query := `
		SELECT id, username, email, password_hash, contact_number, profile_image, budget, wedding_date, created_at, updated_at
		FROM couples
		WHERE email = $1`

	couple := &models.Couple{}
	err := r.db.QueryRow(query, email).Scan(
		&couple.ID,
		&couple.Username,
		&couple.Email,
		&couple.PasswordHash,
		&couple.ContactNumber,
		&couple.ProfileImage,
		&couple.Budget,
		&couple.WeddingDate,
		&couple.CreatedAt,
		&couple.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Couple not found")
		}
		return nil, fmt.Errorf("failed to get couple by email: %w", err)
	}

	return couple, nil
}

// EmailExists reports whether a couple account already uses the email
func (r *CoupleRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM couples WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check couple email: %w", err)
	}
	return exists, nil
}

// Update applies a partial profile update and returns the updated couple.
// Nil fields in the request leave the stored values untouched.
func (r *CoupleRepository) Update(id uuid.UUID, req *models.CoupleUpdateRequest) (*models.Couple, error) {
	query := `
		UPDATE couples
		SET username = COALESCE($2, username),
		    contact_number = COALESCE($3, contact_number),
		    wedding_date = COALESCE($4, wedding_date),
		    budget = COALESCE($5, budget),
		    profile_image = COALESCE($6, profile_image),
		    updated_at = $7
		WHERE id = $1
		RETURNING id, username, email, contact_number, profile_image, budget, wedding_date, created_at, updated_at`

	couple := &models.Couple{}
	err := r.db.QueryRow(
		query,
		id,
		req.Username,
		req.ContactNumber,
		req.WeddingDate,
		req.Budget,
		req.ProfileImage,
		time.Now(),
	).Scan(
		&couple.ID,
		&couple.Username,
		&couple.Email,
		&couple.ContactNumber,
		&couple.ProfileImage,
		&couple.Budget,
		&couple.WeddingDate,
		&couple.CreatedAt,
		&couple.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Couple not found")
		}
		return nil, fmt.Errorf("failed to update couple: %w", err)
	}

	return couple, nil
}

// GetBookedVendors returns the couple's booked-vendor list in booking order,
// with vendor names resolved where the vendor still exists.
func (r *CoupleRepository) GetBookedVendors(coupleID uuid.UUID) ([]models.BookedVendor, error) {
	query := `
		SELECT b.vendor_id, COALESCE(v.business_name, ''), b.service_type
		FROM booked_vendors b
		LEFT JOIN vendors v ON v.id = b.vendor_id
		WHERE b.couple_id = $1
		ORDER BY b.created_at, b.id`

	rows, err := r.db.Query(query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked vendors: %w", err)
	}
	defer rows.Close()

	booked := []models.BookedVendor{}
	for rows.Next() {
		var b models.BookedVendor
		if err := rows.Scan(&b.VendorID, &b.VendorName, &b.ServiceType); err != nil {
			return nil, fmt.Errorf("failed to scan booked vendor: %w", err)
		}
		booked = append(booked, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booked vendors: %w", err)
	}

	return booked, nil
}
