package cron

import (
	"context"
	"fmt"
	"time"

	"helperhub/config"
	"helperhub/services/notification"
	"helperhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection for the notification queue.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NotificationWorker consumes request-created tasks.
type NotificationWorker struct {
	srv    *asynq.Server
	mux    *asynq.ServeMux
	logger *zap.Logger
}

// NewNotificationWorker builds the worker; Start runs it in the background.
func NewNotificationWorker(notifSvc notification.NotificationService, logger *zap.Logger) *NotificationWorker {
	concurrency := config.AppConfig.NotificationWorkerConcurrency
	if concurrency <= 0 {
		concurrency = 10
	}
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeRequestCreated, handleRequestCreatedTask(notifSvc, logger))

	return &NotificationWorker{srv: srv, mux: mux, logger: logger}
}

// Start runs the worker, retrying start-up with a growing backoff.
func (w *NotificationWorker) Start() {
	go func() {
		w.logger.Info("[NotificationWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := w.srv.Start(w.mux)
			if err == nil {
				return
			}
			w.logger.Error("[NotificationWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				w.logger.Error("[NotificationWorker] giving up, notifications stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

// Shutdown waits for in-flight tasks and stops the worker.
func (w *NotificationWorker) Shutdown() {
	w.srv.Shutdown()
}

func handleRequestCreatedTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseRequestCreatedTask(task)
		if err != nil {
			logger.Error("[NotificationHandler] invalid payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}
		if err := notifSvc.NotifyRequestCreated(ctx, p); err != nil {
			logger.Warn("[NotificationHandler] delivery failed",
				zap.String("requestID", p.RequestID), zap.Error(err))
			return err
		}
		return nil
	}
}
