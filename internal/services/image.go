package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"wednest/internal/models"
)

// uploadFolder is the key prefix under which all profile and service images
// are stored.
const uploadFolder = "wednest/uploads"

// MaxImageBytes bounds a single uploaded image
const MaxImageBytes = 10 << 20 // 10 MB

var keyCharRegex = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// ImageService validates uploaded images, normalizes them to PNG and stores
// them through the configured storage backend.
type ImageService struct {
	storage StorageService
}

// NewImageService creates a new image service
func NewImageService(storage StorageService) *ImageService {
	return &ImageService{storage: storage}
}

// UploadImage decodes, normalizes and stores one image, returning its public
// URL. Unsupported or corrupt image data yields a ValidationError.
func (s *ImageService) UploadImage(ctx context.Context, reader io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(reader, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > MaxImageBytes {
		return "", models.NewValidationError("Image too large")
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}
	if !isValidImageFormat(format) {
		return "", models.NewValidationError(fmt.Sprintf("Unsupported image format: %s", format))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	key := generateImageKey(filename)
	url, err := s.storage.Upload(ctx, key, bytes.NewReader(buf.Bytes()), "image/png", int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return url, nil
}

// RemoveImage deletes a previously uploaded image given its public URL. URLs
// outside the upload folder (external links, the default placeholder) are
// ignored.
func (s *ImageService) RemoveImage(ctx context.Context, url string) error {
	idx := strings.Index(url, uploadFolder+"/")
	if idx == -1 {
		return nil
	}

	if err := s.storage.Delete(ctx, url[idx:]); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

// isValidImageFormat checks if the decoded format is supported
func isValidImageFormat(format string) bool {
	switch format {
	case "jpeg", "png", "gif":
		return true
	}
	return false
}

// generateImageKey builds a storage key from the original filename. The
// timestamp prefix keeps keys unique even for repeated uploads of the same
// file.
func generateImageKey(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = keyCharRegex.ReplaceAllString(base, "_")
	if base == "" || base == "." {
		base = "image"
	}
	return fmt.Sprintf("%s/%d-%s.png", uploadFolder, time.Now().UnixNano(), base)
}
