package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the stored status of a service request. The stored
// vocabulary is canonical: the transition API accepts "Declined" as an input
// token and translates it to Rejected at the boundary.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusAccepted RequestStatus = "Accepted"
	RequestStatusRejected RequestStatus = "Rejected"
)

// Transition input tokens accepted by the accept/decline endpoint
const (
	RequestActionAccept  = "Accepted"
	RequestActionDecline = "Declined"
)

// Request represents a couple's interest in a vendor.
// State machine: Pending --(vendor action)--> Accepted | Rejected.
// Settled requests are immutable.
type Request struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	CoupleID  uuid.UUID     `json:"couple_id" db:"couple_id"`
	VendorID  uuid.UUID     `json:"vendor_id" db:"vendor_id"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`

	// Populated counterpart summaries on joined reads; nil otherwise.
	Vendor *VendorSummary `json:"vendor,omitempty"`
	Couple *CoupleSummary `json:"couple,omitempty"`
}

// Settled reports whether the request has left the Pending state
func (r *Request) Settled() bool {
	return r.Status != RequestStatusPending
}

// ParseRequestAction translates a transition input token into the stored
// status vocabulary. Returns a ValidationError for anything but the two
// exact tokens.
func ParseRequestAction(action string) (RequestStatus, error) {
	switch action {
	case RequestActionAccept:
		return RequestStatusAccepted, nil
	case RequestActionDecline:
		return RequestStatusRejected, nil
	default:
		return "", NewValidationError("Invalid status. Must be 'Accepted' or 'Declined'")
	}
}
