package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItemStatus tracks the vendor's response on a cart line item
type CartItemStatus string

const (
	CartItemStatusWaiting   CartItemStatus = "Waiting for Confirmation"
	CartItemStatusConfirmed CartItemStatus = "Confirmed by Vendor"
	CartItemStatusDeclined  CartItemStatus = "Declined by Vendor"
)

// Cart is the single cart owned by a couple (1:1, lazily materialized).
// Invariant: TotalBudget equals the sum of all item prices.
type Cart struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	CoupleID    uuid.UUID  `json:"couple_id" db:"couple_id"`
	Items       []CartItem `json:"items"`
	TotalBudget float64    `json:"total_budget" db:"total_budget"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CartItem is one line item, tied back to its originating request. Each item
// carries its own id so removal is deterministic even when several items
// reference the same vendor.
type CartItem struct {
	ID          uuid.UUID      `json:"id" db:"id"`
	VendorID    uuid.UUID      `json:"vendor_id" db:"vendor_id"`
	ServiceType string         `json:"service_type" db:"service_type"`
	Price       float64        `json:"price" db:"price"`
	Status      CartItemStatus `json:"status" db:"status"`
	RequestID   uuid.UUID      `json:"request_id" db:"request_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`

	// Populated vendor summary on joined reads; nil otherwise.
	Vendor *VendorSummary `json:"vendor,omitempty"`
}

// SumPrices returns the sum of all item prices, the value TotalBudget must
// always match.
func (c *Cart) SumPrices() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// AddItemRequest carries the validated input of an add-to-cart call
type AddItemRequest struct {
	CoupleID    uuid.UUID
	VendorID    uuid.UUID
	ServiceType string
	Price       float64
	RequestID   uuid.UUID
}
