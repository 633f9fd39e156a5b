package models

import (
	"time"

	"github.com/google/uuid"
)

// MaxServiceImages bounds the service image list on a vendor profile
const MaxServiceImages = 5

// Vendor represents a vendor (service provider) account with its business
// profile.
type Vendor struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	Username           string    `json:"username" db:"username"`
	Email              string    `json:"email" db:"email"`
	PasswordHash       string    `json:"-" db:"password_hash"`
	BusinessName       string    `json:"business_name" db:"business_name"`
	VendorType         string    `json:"vendor_type" db:"vendor_type"`
	ContactNumber      string    `json:"contact_number" db:"contact_number"`
	Location           string    `json:"location" db:"location"`
	Pricing            float64   `json:"pricing" db:"pricing"`
	ProfileImage       string    `json:"profile_image" db:"profile_image"`
	ServiceImages      []string  `json:"service_images" db:"service_images"`
	ServiceDescription string    `json:"service_description" db:"service_description"`
	Earnings           float64   `json:"earnings" db:"earnings"`
	UpcomingBookings   []string  `json:"upcoming_bookings" db:"upcoming_bookings"`
	Ratings            float64   `json:"ratings" db:"ratings"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// VendorUpdateRequest represents the partial field set accepted by a vendor
// profile update. ServiceImages, when present, replaces the whole list.
type VendorUpdateRequest struct {
	BusinessName       *string  `json:"business_name,omitempty"`
	VendorType         *string  `json:"vendor_type,omitempty"`
	ContactNumber      *string  `json:"contact_number,omitempty"`
	Location           *string  `json:"location,omitempty"`
	Pricing            *float64 `json:"pricing,omitempty"`
	ServiceDescription *string  `json:"service_description,omitempty"`
	ProfileImage       *string  `json:"profile_image,omitempty"`
	ServiceImages      []string `json:"service_images,omitempty"`
}

// VendorDashboard is the summary projection served on the vendor dashboard.
// The profile-image default is part of the contract.
type VendorDashboard struct {
	Username           string   `json:"username"`
	Email              string   `json:"email"`
	BusinessName       string   `json:"business_name"`
	VendorType         string   `json:"vendor_type"`
	Earnings           float64  `json:"earnings"`
	ProfileImage       string   `json:"profile_image"`
	UpcomingBookings   []string `json:"upcoming_bookings"`
	Ratings            float64  `json:"ratings"`
	ServiceImages      []string `json:"service_images"`
	ServiceDescription string   `json:"service_description"`
}

// DefaultProfileImage is rendered on the vendor dashboard when no image is set
const DefaultProfileImage = "/profile.png"

// VendorSummary is the counterpart projection used when requests and cart
// items are read with references resolved.
type VendorSummary struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	BusinessName string    `json:"business_name" db:"business_name"`
	VendorType   string    `json:"vendor_type" db:"vendor_type"`
}

// CoupleSummary is the counterpart projection for vendor-side request reads
type CoupleSummary struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Username string    `json:"username" db:"username"`
	Email    string    `json:"email" db:"email"`
}
