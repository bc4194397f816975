package helper

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BlobService is the uniform upload/delete facade controllers depend on.
// Photo fields in the DB store only the returned (url, objectKey) pair.
type BlobService interface {
	UploadPhoto(ctx context.Context, folder string, fh *multipart.FileHeader) (publicURL, objectKey string, err error)
	DeleteByKey(ctx context.Context, objectKey string) error
}

type OSSBlobService struct {
	svc *OSSService
}

// NewOSSBlobServiceFromEnv builds the service from ALI_OSS_* env vars.
// prefix is optional (e.g. "uploads/").
func NewOSSBlobServiceFromEnv(prefix string) (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv(prefix)
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) UploadPhoto(ctx context.Context, folder string, fh *multipart.FileHeader) (string, string, error) {
	if fh == nil {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "Photo file is required")
	}
	url, key, err := b.svc.UploadAsWebP(ctx, fh, folder)
	if err != nil {
		if strings.Contains(err.Error(), "unsupported image format") {
			return "", "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (use jpg/png/webp)")
		}
		return "", "", fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Upload to OSS failed: %v", err))
	}
	return url, key, nil
}

func (b *OSSBlobService) DeleteByKey(ctx context.Context, objectKey string) error {
	if strings.TrimSpace(objectKey) == "" {
		return nil
	}
	if err := b.svc.DeleteObject(ctx, objectKey); err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Delete object failed: %v", err))
	}
	return nil
}

/* --------------------------------------------------
   Small controller helpers
-------------------------------------------------- */

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

var defaultImageFields = []string{"photo", "image", "file", "picture"}

// GetImageFile looks for an uploaded file under common form field names.
// Returns (nil, nil) when none is present so controllers can fall back.
func GetImageFile(c *fiber.Ctx, fieldNames ...string) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Use multipart/form-data")
	}
	names := fieldNames
	if len(names) == 0 {
		names = defaultImageFields
	}
	for _, fn := range names {
		if fh, err := c.FormFile(fn); err == nil && fh != nil {
			return fh, nil
		}
	}
	return nil, nil
}

/* --------------------------------------------------
   Mock for unit tests
-------------------------------------------------- */

type MockBlobService struct {
	UploadPhotoFn func(ctx context.Context, folder string, fh *multipart.FileHeader) (string, string, error)
	DeleteByKeyFn func(ctx context.Context, objectKey string) error

	Deleted []string
}

func (m *MockBlobService) UploadPhoto(ctx context.Context, folder string, fh *multipart.FileHeader) (string, string, error) {
	if m.UploadPhotoFn == nil {
		return "", "", errors.New("not implemented")
	}
	return m.UploadPhotoFn(ctx, folder, fh)
}

func (m *MockBlobService) DeleteByKey(ctx context.Context, objectKey string) error {
	m.Deleted = append(m.Deleted, objectKey)
	if m.DeleteByKeyFn == nil {
		return nil
	}
	return m.DeleteByKeyFn(ctx, objectKey)
}
