package services

import (
	"github.com/google/uuid"

	"wednest/internal/models"
)

// RequestService handles the couple→vendor service-request workflow.
// Requests move Pending → Accepted | Rejected exactly once.
type RequestService struct {
	requestRepo RequestRepository
}

// NewRequestService creates a new request service
func NewRequestService(requestRepo RequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

// Send creates a Pending request from a couple to a vendor. At most one
// Pending request may exist per pair; settled requests do not block a new one.
func (s *RequestService) Send(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	return s.requestRepo.Create(coupleID, vendorID)
}

// ListForCouple returns all requests the couple has sent, with vendor
// summaries resolved.
func (s *RequestService) ListForCouple(coupleID uuid.UUID) ([]*models.Request, error) {
	return s.requestRepo.ListForCouple(coupleID)
}

// ListForVendor returns all requests addressed to the vendor, with couple
// summaries resolved.
func (s *RequestService) ListForVendor(vendorID uuid.UUID) ([]*models.Request, error) {
	return s.requestRepo.ListForVendor(vendorID)
}

// Resolve returns the most recent request between the pair, any status
func (s *RequestService) Resolve(coupleID, vendorID uuid.UUID) (*models.Request, error) {
	return s.requestRepo.FindByPair(coupleID, vendorID)
}

// Respond settles a pending request. The action token must be exactly
// "Accepted" or "Declined"; a declined request is stored as Rejected.
func (s *RequestService) Respond(requestID uuid.UUID, action string) (*models.Request, error) {
	status, err := models.ParseRequestAction(action)
	if err != nil {
		return nil, err
	}

	return s.requestRepo.SetStatus(requestID, status)
}
