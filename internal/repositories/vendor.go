package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"wednest/internal/models"
)

// VendorRepository handles vendor account data operations
type VendorRepository struct {
	db *sql.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

const vendorColumns = `id, username, email, password_hash, business_name, vendor_type, contact_number,
	location, pricing, profile_image, service_images, service_description, earnings, upcoming_bookings,
	ratings, created_at, updated_at`

func scanVendor(row interface{ Scan(...interface{}) error }) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	err := row.Scan(
		&vendor.ID,
		&vendor.Username,
		&vendor.Email,
		&vendor.PasswordHash,
		&vendor.BusinessName,
		&vendor.VendorType,
		&vendor.ContactNumber,
		&vendor.Location,
		&vendor.Pricing,
		&vendor.ProfileImage,
		pq.Array(&vendor.ServiceImages),
		&vendor.ServiceDescription,
		&vendor.Earnings,
		pq.Array(&vendor.UpcomingBookings),
		&vendor.Ratings,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// Create persists a new vendor account. The password must already be hashed.
func (r *VendorRepository) Create(username, email, passwordHash string) (*models.Vendor, error) {
	query := fmt.Sprintf(`
		INSERT INTO vendors (id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING %s`, vendorColumns)

	vendor, err := scanVendor(r.db.QueryRow(query, uuid.New(), username, email, passwordHash, time.Now()))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.NewConflictError("Email already exists")
		}
		return nil, fmt.Errorf("failed to create vendor: %w", err)
	}

	return vendor, nil
}

// GetByID retrieves a vendor by id
func (r *VendorRepository) GetByID(id uuid.UUID) (*models.Vendor, error) {
	query := fmt.Sprintf("SELECT %s FROM vendors WHERE id = $1", vendorColumns)

	vendor, err := scanVendor(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Vendor not found")
		}
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}

	return vendor, nil
}

// GetByEmail retrieves a vendor by email (for authentication)
func (r *VendorRepository) GetByEmail(email string) (*models.Vendor, error) {
	query := fmt.Sprintf("SELECT %s FROM vendors WHERE email = $1", vendorColumns)

	vendor, err := scanVendor(r.db.QueryRow(query, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Vendor not found")
		}
		return nil, fmt.Errorf("failed to get vendor by email: %w", err)
	}

	return vendor, nil
}

// EmailExists reports whether a vendor account already uses the email
func (r *VendorRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow("SELECT EXISTS(SELECT 1 FROM vendors WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check vendor email: %w", err)
	}
	return exists, nil
}

// Update applies a partial profile update and returns the updated vendor.
// Nil fields leave stored values untouched; a non-nil ServiceImages slice
// replaces the whole list.
func (r *VendorRepository) Update(id uuid.UUID, req *models.VendorUpdateRequest) (*models.Vendor, error) {
	var serviceImages interface{}
	if req.ServiceImages != nil {
		serviceImages = pq.Array(req.ServiceImages)
	}

	query := fmt.Sprintf(`
		UPDATE vendors
		SET business_name = COALESCE($2, business_name),
		    vendor_type = COALESCE($3, vendor_type),
		    contact_number = COALESCE($4, contact_number),
		    location = COALESCE($5, location),
		    pricing = COALESCE($6, pricing),
		    service_description = COALESCE($7, service_description),
		    profile_image = COALESCE($8, profile_image),
		    service_images = COALESCE($9, service_images),
		    updated_at = $10
		WHERE id = $1
		RETURNING %s`, vendorColumns)

	vendor, err := scanVendor(r.db.QueryRow(
		query,
		id,
		req.BusinessName,
		req.VendorType,
		req.ContactNumber,
		req.Location,
		req.Pricing,
		req.ServiceDescription,
		req.ProfileImage,
		serviceImages,
		time.Now(),
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Vendor not found")
		}
		return nil, fmt.Errorf("failed to update vendor: %w", err)
	}

	return vendor, nil
}

// ListByType retrieves all vendors of the given category
func (r *VendorRepository) ListByType(vendorType string) ([]*models.Vendor, error) {
	query := fmt.Sprintf("SELECT %s FROM vendors WHERE vendor_type = $1 ORDER BY created_at DESC", vendorColumns)

	rows, err := r.db.Query(query, vendorType)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors by type: %w", err)
	}
	defer rows.Close()

	var vendors []*models.Vendor
	for rows.Next() {
		vendor, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, vendor)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}
