package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"wednest/internal/models"
)

// CartRepository handles cart and line-item data operations. The cart's
// total_budget must equal the sum of its item prices after every mutation;
// both mutations run as single transactions.
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// AddItem appends a line item to the couple's cart, creating the cart on
// first use. The upsert is guarded by the unique index on couple_id, so
// concurrent first adds cannot materialize two carts. total_budget is
// incremented rather than recomputed.
func (r *CartRepository) AddItem(req *models.AddItemRequest) (*models.Cart, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()

	var cartID uuid.UUID
	err = tx.QueryRow(`
		INSERT INTO carts (id, couple_id, total_budget, created_at, updated_at)
		VALUES ($1, $2, 0, $3, $3)
		ON CONFLICT (couple_id) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id`,
		uuid.New(), req.CoupleID, now,
	).Scan(&cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO cart_items (id, cart_id, vendor_id, service_type, price, status, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New(), cartID, req.VendorID, req.ServiceType, req.Price,
		models.CartItemStatusWaiting, req.RequestID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart item: %w", err)
	}

	_, err = tx.Exec(
		"UPDATE carts SET total_budget = total_budget + $2, updated_at = $3 WHERE id = $1",
		cartID, req.Price, now,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update total budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit add item: %w", err)
	}

	return r.GetByCoupleID(req.CoupleID)
}

// RemoveItemByVendor removes the oldest line item referencing the vendor.
// Items confirmed by the vendor are protected from removal. total_budget is
// recomputed as the full sum over the remaining items.
func (r *CartRepository) RemoveItemByVendor(coupleID, vendorID uuid.UUID) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var cartID uuid.UUID
	err = tx.QueryRow("SELECT id FROM carts WHERE couple_id = $1 FOR UPDATE", coupleID).Scan(&cartID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewNotFoundError("Cart not found for this couple")
		}
		return fmt.Errorf("failed to load cart: %w", err)
	}

	var itemID uuid.UUID
	var status models.CartItemStatus
	err = tx.QueryRow(`
		SELECT id, status FROM cart_items
		WHERE cart_id = $1 AND vendor_id = $2
		ORDER BY created_at, id
		LIMIT 1`,
		cartID, vendorID,
	).Scan(&itemID, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.NewNotFoundError("Item not found in cart")
		}
		return fmt.Errorf("failed to find cart item: %w", err)
	}

	if status == models.CartItemStatusConfirmed {
		return models.NewConflictError("Cannot remove item confirmed by vendor")
	}

	if _, err := tx.Exec("DELETE FROM cart_items WHERE id = $1", itemID); err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE carts
		SET total_budget = (SELECT COALESCE(SUM(price), 0) FROM cart_items WHERE cart_id = $1),
		    updated_at = $2
		WHERE id = $1`,
		cartID, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to recompute total budget: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit remove item: %w", err)
	}

	return nil
}

// GetByCoupleID retrieves the couple's cart with items in insertion order and
// vendor summaries resolved where the vendor still exists. Returns a
// NotFoundError when the couple has never added an item.
func (r *CartRepository) GetByCoupleID(coupleID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{}
	err := r.db.QueryRow(
		"SELECT id, couple_id, total_budget, created_at, updated_at FROM carts WHERE couple_id = $1",
		coupleID,
	).Scan(&cart.ID, &cart.CoupleID, &cart.TotalBudget, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, models.NewNotFoundError("Cart not found for this couple")
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	query := `
		SELECT i.id, i.vendor_id, i.service_type, i.price, i.status, i.request_id, i.created_at,
		       v.id, v.username, v.business_name, v.vendor_type
		FROM cart_items i
		LEFT JOIN vendors v ON v.id = i.vendor_id
		WHERE i.cart_id = $1
		ORDER BY i.created_at, i.id`

	rows, err := r.db.Query(query, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var vendorID, vendorUsername, businessName, vendorType sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.VendorID,
			&item.ServiceType,
			&item.Price,
			&item.Status,
			&item.RequestID,
			&item.CreatedAt,
			&vendorID,
			&vendorUsername,
			&businessName,
			&vendorType,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		if vendorID.Valid {
			item.Vendor = &models.VendorSummary{
				ID:           uuid.MustParse(vendorID.String),
				Username:     vendorUsername.String,
				BusinessName: businessName.String,
				VendorType:   vendorType.String,
			}
		}
		cart.Items = append(cart.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return cart, nil
}
