package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wednest/internal/models"
)

// RequestRepository handles service-request data operations
type RequestRepository struct {
	db *sql.DB
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *sql.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

// Create inserts a new Pending request for the pair. A friendly pre-check
// catches an existing Pending request; the partial unique index catches the
// race the pre-check cannot.
func (r *RequestRepository) Create(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM requests WHERE couple_id = $1 AND vendor_id = $2 AND status = 'Pending')",
		coupleID, vendorID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending request: %w", err)
	}
	if exists {
		return nil, models.NewConflictError("Request already sent waiting for response")
	}

	query := `
		INSERT INTO requests (id, couple_id, vendor_id, status, created_at)
		VALUES ($1, $2, $3, 'Pending', $4)
		RETURNING id, couple_id, vendor_id, status, created_at`

	request := &models.Request{}
	err = r.db.QueryRow(query, uuid.New(), coupleID, vendorID, time.Now()).Scan(
		&request.ID,
		&request.CoupleID,
		&request.VendorID,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, models.NewConflictError("Request already sent waiting for response")
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return request, nil
}

// GetByID retrieves a request by id
func (r *RequestRepository) GetByID(id uuid.UUID) (*models.Request, error) {
	query := `SELECT id, couple_id, vendor_id, status, created_at FROM requests WHERE id = $1`

	request := &models.Request{}
	err := r.db.QueryRow(query, id).Scan(
		&request.ID,
		&request.CoupleID,
		&request.VendorID,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Request not found")
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	return request, nil
}

// ListForCouple returns all requests sent by the couple, newest first, with
// the vendor summary resolved where the vendor still exists.
func (r *RequestRepository) ListForCouple(coupleID uuid.UUID) ([]*models.Request, error) {
	query := `
		SELECT r.id, r.couple_id, r.vendor_id, r.status, r.created_at,
		       v.id, v.username, v.business_name, v.vendor_type
		FROM requests r
		LEFT JOIN vendors v ON v.id = r.vendor_id
		WHERE r.couple_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for couple: %w", err)
	}
	defer rows.Close()

	requests := []*models.Request{}
	for rows.Next() {
		request := &models.Request{}
		var vendorID sql.NullString
		var vendorUsername, businessName, vendorType sql.NullString
		err := rows.Scan(
			&request.ID,
			&request.CoupleID,
			&request.VendorID,
			&request.Status,
			&request.CreatedAt,
			&vendorID,
			&vendorUsername,
			&businessName,
			&vendorType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		if vendorID.Valid {
			request.Vendor = &models.VendorSummary{
				ID:           uuid.MustParse(vendorID.String),
				Username:     vendorUsername.String,
				BusinessName: businessName.String,
				VendorType:   vendorType.String,
			}
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requests: %w", err)
	}

	return requests, nil
}

// ListForVendor returns all requests received by the vendor, newest first,
// with the couple summary resolved where the couple still exists.
func (r *RequestRepository) ListForVendor(vendorID uuid.UUID) ([]*models.Request, error) {
	query := `
		SELECT r.id, r.couple_id, r.vendor_id, r.status, r.created_at,
		       c.id, c.username, c.email
		FROM requests r
		LEFT JOIN couples c ON c.id = r.couple_id
		WHERE r.vendor_id = $1
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(query, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for vendor: %w", err)
	}
	defer rows.Close()

	requests := []*models.Request{}
	for rows.Next() {
		request := &models.Request{}
		var coupleID, coupleUsername, coupleEmail sql.NullString
		err := rows.Scan(
			&request.ID,
			&request.CoupleID,
			&request.VendorID,
			&request.Status,
			&request.CreatedAt,
			&coupleID,
			&coupleUsername,
			&coupleEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		if coupleID.Valid {
			request.Couple = &models.CoupleSummary{
				ID:       uuid.MustParse(coupleID.String),
				Username: coupleUsername.String,
				Email:    coupleEmail.String,
			}
		}
		requests = append(requests, request)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requests: %w", err)
	}

	return requests, nil
}

// FindByPair returns the most recent request for the (couple, vendor) pair,
// any status. Used by the cart flow to link an item to its request.
func (r *RequestRepository) FindByPair(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	query := `
		SELECT id, couple_id, vendor_id, status, created_at
		FROM requests
		WHERE couple_id = $1 AND vendor_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	request := &models.Request{}
	err := r.db.QueryRow(query, coupleID, vendorID).Scan(
		&request.ID,
		&request.CoupleID,
		&request.VendorID,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("No request found for given couple_id and vendor_id")
		}
		return nil, fmt.Errorf("failed to find request: %w", err)
	}

	return request, nil
}

// SetStatus settles a Pending request and propagates the outcome in the same
// transaction: cart items referencing the request are confirmed or declined,
// and an accepted vendor is appended to the couple's booked-vendor list.
func (r *RequestRepository) SetStatus(id uuid.UUID, status models.RequestStatus) (*models.Request, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	request := &models.Request{}
	err = tx.QueryRow(
		"SELECT id, couple_id, vendor_id, status, created_at FROM requests WHERE id = $1 FOR UPDATE",
		id,
	).Scan(&request.ID, &request.CoupleID, &request.VendorID, &request.Status, &request.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Request not found")
		}
		return nil, fmt.Errorf("failed to load request: %w", err)
	}

	// Settled requests are immutable in this scope
	if request.Settled() {
		return nil, models.NewConflictError("Request already settled")
	}

	if _, err := tx.Exec("UPDATE requests SET status = $2 WHERE id = $1", id, status); err != nil {
		return nil, fmt.Errorf("failed to update request status: %w", err)
	}

	itemStatus := models.CartItemStatusConfirmed
	if status == models.RequestStatusRejected {
		itemStatus = models.CartItemStatusDeclined
	}
	if _, err := tx.Exec("UPDATE cart_items SET status = $2 WHERE request_id = $1", id, itemStatus); err != nil {
		return nil, fmt.Errorf("failed to update cart items: %w", err)
	}

	if status == models.RequestStatusAccepted {
		// Service type comes from the linked cart item when one exists,
		// falling back to the vendor's category. The couple-existence guard
		// keeps the advisory-reference model of sendRequest intact.
		bookQuery := `
			INSERT INTO booked_vendors (id, couple_id, vendor_id, service_type, created_at)
			SELECT $1, $2, $3,
			       COALESCE(
			           (SELECT i.service_type FROM cart_items i WHERE i.request_id = $4 ORDER BY i.created_at LIMIT 1),
			           (SELECT v.vendor_type FROM vendors v WHERE v.id = $3),
			           ''),
			       $5
			WHERE EXISTS (SELECT 1 FROM couples c WHERE c.id = $2)`
		if _, err := tx.Exec(bookQuery, uuid.New(), request.CoupleID, request.VendorID, id, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to record booked vendor: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	request.Status = status
	return request, nil
}
