package storage

import (
	"context"
	"fmt"
	"io"

	"helperhub/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryAssetStore implements AssetStore on Cloudinary. The object path
// is used as the public ID so re-uploads replace the previous image.
type CloudinaryAssetStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryAssetStore(cloudName, apiKey, apiSecret string) (*CloudinaryAssetStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryAssetStore{cld: cld}, nil
}

func (s *CloudinaryAssetStore) Upload(ctx context.Context, objectPath string, r io.Reader, _ string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	params := uploader.UploadParams{
		PublicID:   objectPath,
		Overwrite:  api.Bool(true),
		Invalidate: api.Bool(true),
	}
	result, err := s.cld.Upload.Upload(ctx, r, params)
	if err != nil {
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("failed to upload asset: %s", result.Error.Message)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no secure URL returned for %s", objectPath)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryAssetStore) Delete(ctx context.Context, objectPath string) error {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: objectPath}); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
