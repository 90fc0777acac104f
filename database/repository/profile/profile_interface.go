package profileRepo

import (
	"context"
	"errors"

	"helperhub/models"
)

// ErrNotFound is returned when a profile or signup record does not exist.
var ErrNotFound = errors.New("record not found")

// ProfileRepository defines methods for profile data access.
type ProfileRepository interface {
	// GetProfile reads the unified profile record.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
	// MergeProfile sets the given fields on the profile, creating it when absent.
	// Fields not named in the map are left untouched.
	MergeProfile(ctx context.Context, userID string, fields map[string]interface{}) error
	// GetSignupRecord reads the record written at signup under its user type.
	GetSignupRecord(ctx context.Context, userType models.UserType, userID string) (*models.SignupRecord, error)
	// SaveSignupRecord writes (replaces) a signup record.
	SaveSignupRecord(ctx context.Context, record *models.SignupRecord) error
	// ListProfiles returns every stored profile in the store's natural order.
	ListProfiles(ctx context.Context) ([]models.UserProfile, error)
	// DeleteUserData removes the profile, settings, push token and signup records.
	DeleteUserData(ctx context.Context, userID string) error
}

// NewProfileRepo picks the implementation matching the configured store.
func NewProfileRepo(useMongo bool) ProfileRepository {
	if useMongo {
		return NewMongoProfileRepo()
	}
	return NewRTDBProfileRepo()
}
