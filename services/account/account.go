package account

import (
	"context"
	"strings"

	profileRepo "helperhub/database/repository/profile"
	"helperhub/services/identity"
	"helperhub/services/profile"
	"helperhub/services/storage"
	"helperhub/utils"

	"go.uber.org/zap"
)

// DeleteConfirmation must be typed by the user to delete their account.
const DeleteConfirmation = "DELETE"

const minPasswordLength = 6

type AccountService interface {
	ChangePassword(ctx context.Context, userID, newPassword, confirmPassword string) error
	DeleteAccount(ctx context.Context, userID, confirmation string) error
}

type DefaultAccountService struct {
	Identity identity.IdentityService
	Profiles profileRepo.ProfileRepository
	Assets   storage.AssetStore          // optional
	Snapshot profile.SnapshotInvalidator // optional
	Logger   *zap.Logger
}

func (s *DefaultAccountService) ChangePassword(ctx context.Context, userID, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return utils.NewValidationError("New passwords do not match.")
	}
	if len(newPassword) < minPasswordLength {
		return utils.NewValidationError("Password must be at least 6 characters long.")
	}
	return s.Identity.ChangePassword(ctx, userID, newPassword)
}

// DeleteAccount removes the user's stored data and then the identity. The
// profile image is removed on a best-effort basis.
func (s *DefaultAccountService) DeleteAccount(ctx context.Context, userID, confirmation string) error {
	if strings.TrimSpace(confirmation) != DeleteConfirmation {
		return utils.NewValidationError(`Please type "DELETE" to confirm.`)
	}
	logger := s.logger().With(zap.String("userID", userID))

	if err := s.Profiles.DeleteUserData(ctx, userID); err != nil {
		logger.Error("user data deletion failed", zap.Error(err))
		return utils.NewRemoteError("Failed to delete account", err)
	}
	if s.Snapshot != nil {
		s.Snapshot.Invalidate(ctx)
	}
	if s.Assets != nil {
		if err := s.Assets.Delete(ctx, storage.ProfileImagePath(userID)); err != nil {
			logger.Warn("profile image not deleted", zap.Error(err))
		}
	}
	if err := s.Identity.DeleteUser(ctx, userID); err != nil {
		return err
	}
	logger.Info("account deleted")
	return nil
}

func (s *DefaultAccountService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
