package cron

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"slotmart/config"
	appointmentRepo "slotmart/database/repository/appointment"
	"slotmart/models"
	"slotmart/services/tasks"
	"slotmart/utils"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(apptRepo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(apptRepo))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")

		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a reminder unless the appointment was cancelled
// after the task was enqueued; cancellation tombstones the reminder.
func handleReminderTask(apptRepo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		appt, err := apptRepo.GetByID(ctx, p.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrNotFound) {
				return nil
			}
			return err
		}
		if appt.Terminal() {
			return nil
		}

		logger.Info("appointment reminder",
			zap.String("appointmentId", p.AppointmentID),
			zap.String("buyerId", p.BuyerID),
			zap.String("sellerId", p.SellerID),
			zap.String("slotDay", p.SlotDay),
			zap.String("slotTime", p.SlotTime))
		return nil
	}
}
