package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/models"
	"helperhub/services/storage"
	"helperhub/utils"

	"go.uber.org/zap"
)

func (s *DefaultProfileService) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	p, _, err := profileRepo.LoadProfile(ctx, s.Repo, userID)
	if errors.Is(err, profileRepo.ErrNotFound) {
		return nil, utils.NewNotFoundError("Profile not found.")
	}
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load profile", err)
	}
	return p, nil
}

func (s *DefaultProfileService) UpsertProfile(ctx context.Context, id *models.Identity, req models.ProfileUpdateRequest, image *ImageUpload) (*models.UserProfile, error) {
	logger := s.logger().With(zap.String("userID", id.UID))

	existing, recovered, err := profileRepo.LoadProfile(ctx, s.Repo, id.UID)
	switch {
	case errors.Is(err, profileRepo.ErrNotFound):
		existing = &models.UserProfile{UserID: id.UID}
	case err != nil:
		return nil, utils.NewRemoteError("Failed to load profile", err)
	}

	fields := updateFields(req)
	merged := applyUpdate(*existing, req)
	if merged.UserType == "" {
		if t, err := s.ResolveUserType(ctx, id.UID); err == nil {
			merged.UserType = t
		}
	}
	// A type recovered from the signup record exists only in memory until
	// it is written with the profile; matching reads it from the store.
	if merged.UserType != "" {
		fields["userType"] = merged.UserType
	}
	if err := validateProfile(merged); err != nil {
		return nil, err
	}

	if image != nil {
		uri, err := s.Assets.Upload(ctx, storage.ProfileImagePath(id.UID), image.Reader, image.ContentType)
		if err != nil {
			logger.Error("profile image upload failed", zap.Error(err))
			return nil, utils.NewRemoteError("Failed to upload profile image", err)
		}
		merged.ProfileImage = uri
		fields["profileImage"] = uri
	}

	if recovered && req.Phone == nil {
		fields["phone"] = merged.Phone
	}
	if id.Email != "" {
		merged.Email = id.Email
		fields["email"] = id.Email
	}
	now := time.Now().UTC()
	merged.UpdatedAt = &now
	fields["updatedAt"] = now

	if err := s.Repo.MergeProfile(ctx, id.UID, fields); err != nil {
		logger.Error("profile merge failed", zap.Error(err))
		return nil, utils.NewRemoteError("Failed to save profile", err)
	}
	if s.Snapshot != nil {
		s.Snapshot.Invalidate(ctx)
	}
	logger.Info("profile saved", zap.Int("fields", len(fields)))
	return &merged, nil
}

func (s *DefaultProfileService) RegisterSignup(ctx context.Context, id *models.Identity, req models.SignupRequest) (*models.SignupRecord, error) {
	if !req.UserType.Valid() {
		return nil, utils.NewValidationError("User type must be employer or jobSeeker.")
	}
	record := &models.SignupRecord{
		UserID:    id.UID,
		UserType:  req.UserType,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     id.Email,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: time.Now().UTC(),
	}
	if record.Phone == "" {
		record.Phone = id.PhoneNumber
	}
	if err := s.Repo.SaveSignupRecord(ctx, record); err != nil {
		return nil, utils.NewRemoteError("Failed to create account", err)
	}
	return record, nil
}

// ResolveUserType looks for an employer signup record first, then a job
// seeker one, and finally the type stored on the profile.
func (s *DefaultProfileService) ResolveUserType(ctx context.Context, userID string) (models.UserType, error) {
	for _, t := range []models.UserType{models.UserTypeEmployer, models.UserTypeJobSeeker} {
		_, err := s.Repo.GetSignupRecord(ctx, t, userID)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, profileRepo.ErrNotFound) {
			return "", utils.NewRemoteError("Failed to resolve account type", err)
		}
	}
	p, err := s.Repo.GetProfile(ctx, userID)
	switch {
	case err == nil && p.UserType.Valid():
		return p.UserType, nil
	case err != nil && !errors.Is(err, profileRepo.ErrNotFound):
		return "", utils.NewRemoteError("Failed to resolve account type", err)
	}
	return "", utils.NewNotFoundError("Account type not set. Please complete signup.")
}

func (s *DefaultProfileService) Completeness(ctx context.Context, userID string) (*models.ProfileCompleteness, error) {
	p, _, err := profileRepo.LoadProfile(ctx, s.Repo, userID)
	switch {
	case errors.Is(err, profileRepo.ErrNotFound):
		p = &models.UserProfile{}
	case err != nil:
		return nil, utils.NewRemoteError("Failed to load profile", err)
	}
	missing := missingContactFields(*p)
	result := &models.ProfileCompleteness{Complete: len(missing) == 0, Next: "providers", Missing: missing}
	if !result.Complete {
		result.Next = "profile"
	}
	return result, nil
}
