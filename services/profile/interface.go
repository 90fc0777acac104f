package profile

import (
	"context"
	"io"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/services/storage"

	"go.uber.org/zap"
)

type ProfileService interface {
	// GetProfile returns the caller's profile, recovering a missing phone
	// from the signup record.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	// UpsertProfile merges a partial update into the stored profile. A staged
	// image is uploaded before anything is written.
	UpsertProfile(ctx context.Context, id *models.Identity, req models.ProfileUpdateRequest, image *ImageUpload) (*models.UserProfile, error)
	RegisterSignup(ctx context.Context, id *models.Identity, req models.SignupRequest) (*models.SignupRecord, error)
	ResolveUserType(ctx context.Context, userID string) (models.UserType, error)
	Completeness(ctx context.Context, userID string) (*models.ProfileCompleteness, error)
}

// ImageUpload is a profile picture staged with a profile save.
type ImageUpload struct {
	Reader      io.Reader
	ContentType string
}

// SnapshotInvalidator is notified after a profile changes.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context)
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo     profileRepo.ProfileRepository
	Assets   storage.AssetStore
	Snapshot SnapshotInvalidator // optional
	Logger   *zap.Logger
}

func (s *DefaultProfileService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
