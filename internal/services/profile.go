package services

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"wednest/internal/models"
)

// ImageUploader stores images and removes ones that are no longer referenced
type ImageUploader interface {
	UploadImage(ctx context.Context, reader io.Reader, filename string) (string, error)
	RemoveImage(ctx context.Context, url string) error
}

// FileUpload is one file received from a multipart form
type FileUpload struct {
	Reader   io.Reader
	Filename string
}

// ProfileService handles profile reads, partial updates with image uploads,
// and the dashboard projections for both account types.
type ProfileService struct {
	coupleRepo CoupleRepository
	vendorRepo VendorRepository
	images     ImageUploader
}

// NewProfileService creates a new profile service
func NewProfileService(coupleRepo CoupleRepository, vendorRepo VendorRepository, images ImageUploader) *ProfileService {
	return &ProfileService{
		coupleRepo: coupleRepo,
		vendorRepo: vendorRepo,
		images:     images,
	}
}

// GetCoupleProfile returns the full couple document with booked vendors
// resolved.
func (s *ProfileService) GetCoupleProfile(id uuid.UUID) (*models.Couple, error) {
	couple, err := s.coupleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	booked, err := s.coupleRepo.GetBookedVendors(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked vendors: %w", err)
	}
	couple.BookedVendors = booked

	return couple, nil
}

// UpdateCoupleProfile applies a partial update. When an image is supplied it
// is uploaded first, the resulting URL overwrites the stored reference, and
// the replaced image is removed from storage.
func (s *ProfileService) UpdateCoupleProfile(ctx context.Context, id uuid.UUID, req *models.CoupleUpdateRequest, image *FileUpload) (*models.Couple, error) {
	if req.Budget != nil && *req.Budget < 0 {
		return nil, models.NewValidationError("Budget cannot be negative")
	}

	var oldImage string
	if image != nil {
		current, err := s.coupleRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		oldImage = current.ProfileImage

		url, err := s.images.UploadImage(ctx, image.Reader, image.Filename)
		if err != nil {
			return nil, err
		}
		req.ProfileImage = &url
	}

	couple, err := s.coupleRepo.Update(id, req)
	if err != nil {
		return nil, err
	}

	s.removeReplacedImage(ctx, oldImage, couple.ProfileImage)

	booked, err := s.coupleRepo.GetBookedVendors(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked vendors: %w", err)
	}
	couple.BookedVendors = booked

	return couple, nil
}

// GetCoupleDashboard returns the couple's dashboard projection. An unset
// wedding date renders as "Not Set".
func (s *ProfileService) GetCoupleDashboard(id uuid.UUID) (*models.CoupleDashboard, error) {
	couple, err := s.GetCoupleProfile(id)
	if err != nil {
		return nil, err
	}

	weddingDate := models.WeddingDateNotSet
	if couple.WeddingDate != nil {
		weddingDate = couple.WeddingDate.Format("2006-01-02")
	}

	return &models.CoupleDashboard{
		Username:      couple.Username,
		Email:         couple.Email,
		WeddingDate:   weddingDate,
		Budget:        couple.Budget,
		ProfileImage:  couple.ProfileImage,
		BookedVendors: couple.BookedVendors,
	}, nil
}

// GetCoupleBudget returns the couple's self-declared overall budget. This is
// distinct from the cart's total, which tracks item prices.
func (s *ProfileService) GetCoupleBudget(id uuid.UUID) (float64, error) {
	couple, err := s.coupleRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	return couple.Budget, nil
}

// GetVendorProfile returns the full vendor document
func (s *ProfileService) GetVendorProfile(id uuid.UUID) (*models.Vendor, error) {
	return s.vendorRepo.GetByID(id)
}

// UpdateVendorProfile applies a partial update. The profile image and the
// service images are independent: either may be supplied alone, and an
// uploaded service image set replaces the stored list. Replaced images are
// removed from storage.
func (s *ProfileService) UpdateVendorProfile(ctx context.Context, id uuid.UUID, req *models.VendorUpdateRequest, profileImage *FileUpload, serviceImages []*FileUpload) (*models.Vendor, error) {
	if len(serviceImages) > models.MaxServiceImages {
		return nil, models.NewValidationError(fmt.Sprintf("A maximum of %d service images is allowed", models.MaxServiceImages))
	}
	if req.Pricing != nil && *req.Pricing < 0 {
		return nil, models.NewValidationError("Pricing cannot be negative")
	}

	var oldProfileImage string
	var oldServiceImages []string
	if profileImage != nil || len(serviceImages) > 0 {
		current, err := s.vendorRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		oldProfileImage = current.ProfileImage
		oldServiceImages = current.ServiceImages
	}

	if profileImage != nil {
		url, err := s.images.UploadImage(ctx, profileImage.Reader, profileImage.Filename)
		if err != nil {
			return nil, err
		}
		req.ProfileImage = &url
	}

	if len(serviceImages) > 0 {
		urls := make([]string, 0, len(serviceImages))
		for _, img := range serviceImages {
			url, err := s.images.UploadImage(ctx, img.Reader, img.Filename)
			if err != nil {
				return nil, err
			}
			urls = append(urls, url)
		}
		req.ServiceImages = urls
	}

	vendor, err := s.vendorRepo.Update(id, req)
	if err != nil {
		return nil, err
	}

	if profileImage != nil {
		s.removeReplacedImage(ctx, oldProfileImage, vendor.ProfileImage)
	}
	if len(serviceImages) > 0 {
		for _, old := range oldServiceImages {
			s.removeReplacedImage(ctx, old, "")
		}
	}

	return vendor, nil
}

// removeReplacedImage best-effort deletes an image that is no longer
// referenced. Storage cleanup failures must not fail the profile update.
func (s *ProfileService) removeReplacedImage(ctx context.Context, oldURL, newURL string) {
	if oldURL == "" || oldURL == newURL {
		return
	}
	if err := s.images.RemoveImage(ctx, oldURL); err != nil {
		log.Printf("Failed to remove replaced image %s: %v", oldURL, err)
	}
}

// GetVendorDashboard returns the vendor's dashboard projection. A vendor
// without a profile image gets the default placeholder.
func (s *ProfileService) GetVendorDashboard(id uuid.UUID) (*models.VendorDashboard, error) {
	vendor, err := s.vendorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	profileImage := vendor.ProfileImage
	if profileImage == "" {
		profileImage = models.DefaultProfileImage
	}

	return &models.VendorDashboard{
		Username:           vendor.Username,
		Email:              vendor.Email,
		BusinessName:       vendor.BusinessName,
		VendorType:         vendor.VendorType,
		Earnings:           vendor.Earnings,
		ProfileImage:       profileImage,
		UpcomingBookings:   vendor.UpcomingBookings,
		Ratings:            vendor.Ratings,
		ServiceImages:      vendor.ServiceImages,
		ServiceDescription: vendor.ServiceDescription,
	}, nil
}

// ListVendorsByType returns all vendors offering the given service type. An
// empty result is reported as not found, matching the discovery contract.
func (s *ProfileService) ListVendorsByType(vendorType string) ([]*models.Vendor, error) {
	if vendorType == "" {
		return nil, models.NewValidationError("Vendor type is required")
	}

	vendors, err := s.vendorRepo.ListByType(vendorType)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, models.NewNotFoundError("No vendors found for this type")
	}

	return vendors, nil
}
