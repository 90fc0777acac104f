package identity

import (
	"context"
	"fmt"

	"helperhub/config"
	"helperhub/models"
	"helperhub/utils"

	"firebase.google.com/go/v4/auth"
)

// IdentityService wraps the external identity provider.
type IdentityService interface {
	// VerifyToken checks a Firebase ID token and returns the caller's uid.
	VerifyToken(ctx context.Context, idToken string) (string, error)
	// GetIdentity returns the display fields the provider keeps for uid.
	GetIdentity(ctx context.Context, uid string) (*models.Identity, error)
	ChangePassword(ctx context.Context, uid, newPassword string) error
	DeleteUser(ctx context.Context, uid string) error
}

// FirebaseIdentityService implements IdentityService with Firebase Auth.
type FirebaseIdentityService struct {
	client *auth.Client
}

func NewFirebaseIdentityService(client *auth.Client) (*FirebaseIdentityService, error) {
	if client == nil {
		return nil, fmt.Errorf("identity service initialization error: auth client is nil")
	}
	return &FirebaseIdentityService{client: client}, nil
}

func (s *FirebaseIdentityService) VerifyToken(ctx context.Context, idToken string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", utils.NewUnauthenticatedError("Invalid or expired session. Please sign in again.")
	}
	return token.UID, nil
}

func (s *FirebaseIdentityService) GetIdentity(ctx context.Context, uid string) (*models.Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	record, err := s.client.GetUser(ctx, uid)
	if auth.IsUserNotFound(err) {
		return nil, utils.NewUnauthenticatedError("Account no longer exists.")
	}
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load account", err)
	}
	return &models.Identity{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhoneNumber: record.PhoneNumber,
	}, nil
}

func (s *FirebaseIdentityService) ChangePassword(ctx context.Context, uid, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	if _, err := s.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(newPassword)); err != nil {
		return utils.NewRemoteError("Failed to update password", err)
	}
	return nil
}

func (s *FirebaseIdentityService) DeleteUser(ctx context.Context, uid string) error {
	ctx, cancel := context.WithTimeout(ctx, config.RemoteTimeout())
	defer cancel()

	err := s.client.DeleteUser(ctx, uid)
	if err != nil && !auth.IsUserNotFound(err) {
		return utils.NewRemoteError("Failed to delete account", err)
	}
	return nil
}
