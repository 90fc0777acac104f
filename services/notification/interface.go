package notification

import (
	"context"

	notificationRepo "helperhub/database/repository/notification"
	settingsRepo "helperhub/database/repository/settings"
	"helperhub/models"

	"go.uber.org/zap"
)

// NotificationService manages a user's inbox.
type NotificationService interface {
	// List returns the inbox newest first.
	List(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkAllRead flips every unread notification to read, one write each.
	MarkAllRead(ctx context.Context, userID string) (int, error)
	// NotifyRequestCreated tells a job seeker about a new request.
	NotifyRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error
}

// Pusher delivers a push message to a device token.
type Pusher interface {
	Push(ctx context.Context, token, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	Settings settingsRepo.SettingsRepository
	Pusher   Pusher // optional
	Logger   *zap.Logger
	Now      func() int64 // epoch ms; nil means time.Now
}

func (s *DefaultNotificationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
