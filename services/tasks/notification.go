package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"slowday/models"
)

const TypeNotificationSend = "notification:send"

// NewNotificationTask wraps a payload in an asynq task. Notifications
// are best-effort: no retries, bounded run time.
func NewNotificationTask(payload models.NotificationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeNotificationSend, b)
	opts := []asynq.Option{
		asynq.Queue("notifications"),
		asynq.MaxRetry(0),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}
