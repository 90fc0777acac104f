package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"helperhub/models"
	"helperhub/utils"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func (s *DefaultNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	items, err := s.Repo.List(ctx, userID)
	if err != nil {
		return nil, utils.NewRemoteError("Failed to load notifications", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	if items == nil {
		items = []models.Notification{}
	}
	return items, nil
}

// MarkAllRead returns how many notifications were marked. Writes are
// independent: a failure leaves earlier ones read and the rest unread.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	items, err := s.Repo.List(ctx, userID)
	if err != nil {
		return 0, utils.NewRemoteError("Failed to load notifications", err)
	}

	var (
		marked int
		errs   error
	)
	for _, n := range items {
		if !n.Unread {
			continue
		}
		if err := s.Repo.MarkRead(ctx, userID, n.ID); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		marked++
	}
	if errs != nil {
		s.logger().Warn("some notifications not marked read",
			zap.String("userID", userID),
			zap.Int("marked", marked),
			zap.Int("failed", len(multierr.Errors(errs))),
			zap.Error(errs))
		return marked, utils.NewRemoteError("Failed to update notifications", errs)
	}
	return marked, nil
}

func (s *DefaultNotificationService) NotifyRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error {
	logger := s.logger().With(zap.String("jobSeekerID", p.JobSeekerID), zap.String("requestID", p.RequestID))

	text := fmt.Sprintf("%s sent you a %s service request", p.EmployerName, p.ServiceType)
	n := &models.Notification{Text: text, Unread: true, CreatedAt: s.now()}
	if _, err := s.Repo.Append(ctx, p.JobSeekerID, n); err != nil {
		return fmt.Errorf("failed to append notification: %w", err)
	}

	if s.Pusher == nil || s.Settings == nil {
		return nil
	}
	settings, err := s.Settings.GetSettings(ctx, p.JobSeekerID)
	if err != nil {
		logger.Warn("settings unavailable, push skipped", zap.Error(err))
		return nil
	}
	if !settings.PushNotifications || !settings.RequestNotifications {
		return nil
	}
	token, err := s.Settings.GetPushToken(ctx, p.JobSeekerID)
	if err != nil || token == "" {
		return nil
	}
	data := map[string]string{"requestId": p.RequestID, "type": "request_created"}
	if err := s.Pusher.Push(ctx, token, "New service request", text, data); err != nil {
		logger.Warn("push delivery failed", zap.Error(err))
	}
	return nil
}

func (s *DefaultNotificationService) now() int64 {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UnixMilli()
}
