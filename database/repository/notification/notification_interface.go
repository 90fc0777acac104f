package notificationRepo

import (
	"context"

	"helperhub/models"
)

// NotificationRepository defines methods for a user's notification inbox.
type NotificationRepository interface {
	// List returns the user's notifications in storage order.
	List(ctx context.Context, userID string) ([]models.Notification, error)
	// Append adds a notification and returns its id.
	Append(ctx context.Context, userID string, n *models.Notification) (string, error)
	// MarkRead sets unread=false on a single notification.
	MarkRead(ctx context.Context, userID, notificationID string) error
}

func NewNotificationRepo(useMongo bool) NotificationRepository {
	if useMongo {
		return NewMongoNotificationRepo()
	}
	return NewRTDBNotificationRepo()
}
