package models

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// UserType discriminates the two account collections
type UserType string

const (
	UserTypeCouple UserType = "Couple"
	UserTypeVendor UserType = "Vendor"
)

// Couple represents a couple (event organizer) account
type Couple struct {
	ID            uuid.UUID      `json:"id" db:"id"`
	Username      string         `json:"username" db:"username"`
	Email         string         `json:"email" db:"email"`
	PasswordHash  string         `json:"-" db:"password_hash"`
	ContactNumber string         `json:"contact_number" db:"contact_number"`
	ProfileImage  string         `json:"profile_image" db:"profile_image"`
	Budget        float64        `json:"budget" db:"budget"`
	WeddingDate   *time.Time     `json:"wedding_date,omitempty" db:"wedding_date"`
	BookedVendors []BookedVendor `json:"booked_vendors"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" db:"updated_at"`
}

// BookedVendor is one entry in a couple's ordered booked-vendor list
type BookedVendor struct {
	VendorID    uuid.UUID `json:"vendor_id" db:"vendor_id"`
	VendorName  string    `json:"vendor_name,omitempty" db:"vendor_name"`
	ServiceType string    `json:"service_type" db:"service_type"`
}

// CoupleUpdateRequest represents the partial field set accepted by a couple
// profile update. Nil pointers leave the stored value untouched.
type CoupleUpdateRequest struct {
	Username      *string    `json:"username,omitempty"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	WeddingDate   *time.Time `json:"wedding_date,omitempty"`
	Budget        *float64   `json:"budget,omitempty"`
	ProfileImage  *string    `json:"profile_image,omitempty"`
}

// CoupleDashboard is the summary projection served on the couple dashboard.
// The wedding-date sentinel and defaulted fields are part of the contract.
type CoupleDashboard struct {
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	WeddingDate   string         `json:"wedding_date"`
	Budget        float64        `json:"budget"`
	ProfileImage  string         `json:"profile_image"`
	BookedVendors []BookedVendor `json:"booked_vendors"`
}

// WeddingDateNotSet is rendered on the dashboard when no date is stored
const WeddingDateNotSet = "Not Set"

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidUserType reports whether t is one of the two account types
func ValidUserType(t UserType) bool {
	return t == UserTypeCouple || t == UserTypeVendor
}

// ValidEmail reports whether the address is plausibly well-formed
func ValidEmail(email string) bool {
	return email != "" && len(email) <= 255 && emailRegex.MatchString(email)
}

// ParseID validates a document id, distinguishing malformed ids (400-class)
// from ids that simply resolve to nothing (404-class).
func ParseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, NewValidationError("Invalid ID format")
	}
	return id, nil
}
