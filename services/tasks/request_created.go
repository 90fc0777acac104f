package tasks

import (
	"encoding/json"

	"helperhub/models"

	"github.com/hibiken/asynq"
)

const TypeRequestCreated = "notification:request_created"

func NewRequestCreatedTask(payload models.RequestCreatedPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeRequestCreated, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Queue("default")}

	return task, opts, nil
}

func ParseRequestCreatedTask(task *asynq.Task) (models.RequestCreatedPayload, error) {
	var p models.RequestCreatedPayload
	err := json.Unmarshal(task.Payload(), &p)
	return p, err
}
