package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slowday/config"
	"slowday/models"
	"slowday/services/notification"
	"slowday/services/tasks"
	"slowday/utils"
)

// InitNotificationWorker runs the async notification worker in
// background. Delivery is best-effort: the handler never returns an
// error for a channel failure, so asynq never retries.
func InitNotificationWorker(deliverer *notification.Deliverer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"notifications": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeNotificationSend, handleNotificationTask(deliverer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting notification worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notification worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("notification worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleNotificationTask(deliverer *notification.Deliverer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid notification payload", zap.Error(err))
			return nil
		}
		deliverer.Deliver(ctx, p)
		return nil
	}
}
