package utils

import (
	"fmt"

	"reabilitepro/config"
	"reabilitepro/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary initializes a Cloudinary-backed StorageService from config.
func Cloudinary(cfg *config.Config) (storage.StorageService, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewStorageService(cld, cfg.CloudinaryCloudName, cfg.CloudinaryAPISecret), nil
}
