package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService handles avatar and document uploads.
type StorageService interface {
	// UploadAvatar stores the file and returns its secure delivery URL.
	UploadAvatar(ctx context.Context, file multipart.File, userID string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	// GetSecureDownloadURL generates a signed, short-lived URL for an
	// authenticated resource.
	GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error)
}

type cloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &cloudinaryStorage{cld: cld, cloudName: cloudName, apiSecret: apiSecret}
}

func (s *cloudinaryStorage) UploadAvatar(ctx context.Context, file multipart.File, userID string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   "avatars",
		PublicID: userID,
	})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload avatar: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no delivery URL returned")
	}
	return result.SecureURL, nil
}

func (s *cloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

func (s *cloudinaryStorage) GetSecureDownloadURL(ctx context.Context, resourceType, publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	signature := computeSHA1(stringToSign)
	secureURL := fmt.Sprintf("https://res.cloudinary.com/%s/%s/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, resourceType, signature, expiresAt, publicID)
	return secureURL, nil
}

func computeSHA1(input string) string {
	h := sha1.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}
