package notificationRepo

import (
	"context"
	"fmt"

	"helperhub/database"
	"helperhub/models"

	"firebase.google.com/go/v4/db"
	"github.com/google/uuid"
)

// RTDBNotificationRepo keeps each inbox under notifications/{uid}/{id}.
type RTDBNotificationRepo struct {
	client *db.Client
}

func NewRTDBNotificationRepo() NotificationRepository {
	return &RTDBNotificationRepo{client: database.RTDB}
}

func inboxPath(userID string) string {
	return "notifications/" + userID
}

func (r *RTDBNotificationRepo) List(ctx context.Context, userID string) ([]models.Notification, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	var nodes map[string]models.Notification
	if err := r.client.NewRef(inboxPath(userID)).Get(ctx, &nodes); err != nil {
		return nil, fmt.Errorf("failed to read notifications of %s: %w", userID, err)
	}
	out := make([]models.Notification, 0, len(nodes))
	for id, n := range nodes {
		n.ID = id
		n.UserID = userID
		out = append(out, n)
	}
	return out, nil
}

// Append writes the record with its id in a single Set, so a failed write
// leaves nothing behind for a retried task to duplicate.
func (r *RTDBNotificationRepo) Append(ctx context.Context, userID string, n *models.Notification) (string, error) {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	id, path := newInboxEntry(userID)
	record := *n
	record.ID = id
	if err := r.client.NewRef(path).Set(ctx, &record); err != nil {
		return "", fmt.Errorf("failed to append notification for %s: %w", userID, err)
	}
	n.ID = id
	n.UserID = userID
	return id, nil
}

// newInboxEntry allocates the id and path of a new notification. The list is
// ordered by createdAt, not by key.
func newInboxEntry(userID string) (id, path string) {
	id = uuid.New().String()
	return id, inboxPath(userID) + "/" + id
}

func (r *RTDBNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	ctx, cancel := database.WithTimeout(ctx)
	defer cancel()

	ref := r.client.NewRef(inboxPath(userID) + "/" + notificationID)
	if err := ref.Update(ctx, map[string]interface{}{"unread": false}); err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}
