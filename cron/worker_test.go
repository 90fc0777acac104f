package cron

import (
	"context"
	"errors"
	"testing"

	"helperhub/models"
	"helperhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type recordingNotifications struct {
	got []models.RequestCreatedPayload
	err error
}

func (r *recordingNotifications) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifications) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (r *recordingNotifications) NotifyRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error {
	r.got = append(r.got, p)
	return r.err
}

func TestHandleRequestCreatedTask(t *testing.T) {
	svc := &recordingNotifications{}
	handler := handleRequestCreatedTask(svc, zap.NewNop())

	task, _, err := tasks.NewRequestCreatedTask(models.RequestCreatedPayload{RequestID: "r1", JobSeekerID: "js1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := handler(context.Background(), task); err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if len(svc.got) != 1 || svc.got[0].JobSeekerID != "js1" {
		t.Errorf("unexpected deliveries %+v", svc.got)
	}
}

func TestHandleRequestCreatedTaskBadPayload(t *testing.T) {
	svc := &recordingNotifications{}
	handler := handleRequestCreatedTask(svc, zap.NewNop())

	err := handler(context.Background(), asynq.NewTask(tasks.TypeRequestCreated, []byte("{not json")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected SkipRetry, got %v", err)
	}
	if len(svc.got) != 0 {
		t.Errorf("service must not be called for a bad payload")
	}
}

func TestHandleRequestCreatedTaskRetriesDeliveryFailure(t *testing.T) {
	boom := errors.New("store down")
	handler := handleRequestCreatedTask(&recordingNotifications{err: boom}, zap.NewNop())

	task, _, _ := tasks.NewRequestCreatedTask(models.RequestCreatedPayload{RequestID: "r1", JobSeekerID: "js1"})
	err := handler(context.Background(), task)
	if !errors.Is(err, boom) || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("expected retryable delivery error, got %v", err)
	}
}
