package profileRepo

import (
	"context"
	"errors"
	"fmt"

	"helperhub/models"
)

// LoadProfile reads a profile and, when its phone is empty, recovers the
// phone from the legacy signup record (users/{userType}/{uid}). Profiles
// saved before the unified schema existed only carry it there. Populated
// primary fields are never overwritten.
//
// recovered is true when the returned phone came from the signup record.
// ErrNotFound is returned only when neither record exists.
func LoadProfile(ctx context.Context, repo ProfileRepository, userID string) (profile *models.UserProfile, recovered bool, err error) {
	profile, err = repo.GetProfile(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	if profile != nil && profile.Phone != "" {
		return profile, false, nil
	}

	userType := models.UserTypeJobSeeker
	if profile != nil && profile.UserType.Valid() {
		userType = profile.UserType
	}
	signup, serr := repo.GetSignupRecord(ctx, userType, userID)
	if serr != nil && !errors.Is(serr, ErrNotFound) {
		return nil, false, fmt.Errorf("failed to read signup record for %s: %w", userID, serr)
	}

	if profile == nil {
		if signup == nil {
			return nil, false, ErrNotFound
		}
		profile = &models.UserProfile{UserID: userID, UserType: userType}
	}
	if signup != nil && signup.Phone != "" {
		profile.Phone = signup.Phone
		recovered = true
	}
	return profile, recovered, nil
}
