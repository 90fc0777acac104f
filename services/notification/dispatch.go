package notification

import (
	"context"
	"fmt"

	"helperhub/models"
	"helperhub/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueDispatcher hands request notifications to the asynq worker.
type QueueDispatcher struct {
	Client *asynq.Client
}

func (d *QueueDispatcher) DispatchRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error {
	task, opts, err := tasks.NewRequestCreatedTask(p)
	if err != nil {
		return fmt.Errorf("failed to build task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}
	return nil
}

// InlineDispatcher delivers in the caller's goroutine when no queue is set up.
type InlineDispatcher struct {
	Service NotificationService
}

func (d *InlineDispatcher) DispatchRequestCreated(ctx context.Context, p models.RequestCreatedPayload) error {
	return d.Service.NotifyRequestCreated(ctx, p)
}
