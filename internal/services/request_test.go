package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wednest/internal/models"
)

func TestSendRequestDuplicatePending(t *testing.T) {
	coupleID, vendorID := uuid.New(), uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("Create", coupleID, vendorID).
		Return(nil, models.NewConflictError("Request already sent waiting for response"))
	service := NewRequestService(requestRepo)

	_, err := service.Send(coupleID, vendorID)

	var conflictErr *models.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Request already sent waiting for response", conflictErr.Message)
}

func TestSendRequest(t *testing.T) {
	coupleID, vendorID := uuid.New(), uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("Create", coupleID, vendorID).Return(&models.Request{
		ID:       uuid.New(),
		CoupleID: coupleID,
		VendorID: vendorID,
		Status:   models.RequestStatusPending,
	}, nil)
	service := NewRequestService(requestRepo)

	request, err := service.Send(coupleID, vendorID)

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
}

func TestRespondTranslatesDeclined(t *testing.T) {
	requestID := uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("SetStatus", requestID, models.RequestStatusRejected).Return(&models.Request{
		ID:     requestID,
		Status: models.RequestStatusRejected,
	}, nil)
	service := NewRequestService(requestRepo)

	request, err := service.Respond(requestID, "Declined")

	require.NoError(t, err)
	// The API token is "Declined" but the stored status is Rejected
	assert.Equal(t, models.RequestStatusRejected, request.Status)
	requestRepo.AssertExpectations(t)
}

func TestRespondAccepted(t *testing.T) {
	requestID := uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("SetStatus", requestID, models.RequestStatusAccepted).Return(&models.Request{
		ID:     requestID,
		Status: models.RequestStatusAccepted,
	}, nil)
	service := NewRequestService(requestRepo)

	request, err := service.Respond(requestID, "Accepted")

	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, request.Status)
}

func TestRespondRejectsUnknownTokens(t *testing.T) {
	requestRepo := &MockRequestRepository{}
	service := NewRequestService(requestRepo)

	for _, action := range []string{"", "accepted", "Rejected", "Pending", "yes"} {
		_, err := service.Respond(uuid.New(), action)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr, "action %q", action)
		assert.Equal(t, "Invalid status. Must be 'Accepted' or 'Declined'", validationErr.Message)
	}
	requestRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything)
}

func TestRespondUnknownRequest(t *testing.T) {
	requestID := uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("SetStatus", requestID, models.RequestStatusAccepted).
		Return(nil, models.NewNotFoundError("Request not found"))
	service := NewRequestService(requestRepo)

	_, err := service.Respond(requestID, "Accepted")

	var notFoundErr *models.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestRespondSettledRequestImmutable(t *testing.T) {
	requestID := uuid.New()
	requestRepo := &MockRequestRepository{}
	requestRepo.On("SetStatus", requestID, models.RequestStatusRejected).
		Return(nil, models.NewConflictError("Request already settled"))
	service := NewRequestService(requestRepo)

	_, err := service.Respond(requestID, "Declined")

	var conflictErr *models.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestResolveMostRecent(t *testing.T) {
	coupleID, vendorID := uuid.New(), uuid.New()
	latest := &models.Request{ID: uuid.New(), CoupleID: coupleID, VendorID: vendorID, Status: models.RequestStatusAccepted}
	requestRepo := &MockRequestRepository{}
	requestRepo.On("FindByPair", coupleID, vendorID).Return(latest, nil)
	service := NewRequestService(requestRepo)

	request, err := service.Resolve(coupleID, vendorID)

	require.NoError(t, err)
	assert.Equal(t, latest.ID, request.ID)
}
