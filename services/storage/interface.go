package storage

import (
	"context"
	"fmt"
	"io"

	"helperhub/config"
)

// AssetStore uploads binary assets and returns a URI the web client can load.
type AssetStore interface {
	// Upload writes r at objectPath, replacing any previous object.
	Upload(ctx context.Context, objectPath string, r io.Reader, contentType string) (string, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, objectPath string) error
}

// ProfileImagePath is where a user's profile picture is stored.
func ProfileImagePath(userID string) string {
	return "profileImages/" + userID
}

// NewAssetStore builds the store selected by ASSET_DRIVER.
func NewAssetStore(ctx context.Context) (AssetStore, error) {
	cfg := config.AppConfig
	switch cfg.AssetDriver {
	case "cloudinary":
		return NewCloudinaryAssetStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	case "", "firebase":
		return NewFirebaseAssetStore(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseStorageBucket)
	default:
		return nil, fmt.Errorf("unknown asset driver %q", cfg.AssetDriver)
	}
}
