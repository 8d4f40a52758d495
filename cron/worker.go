package cron

import (
	"context"
	"encoding/json"
	"fmt"

	"arame/config"
	transportRepo "arame/database/repository/transport"
	"arame/models"
	"arame/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Worker consumes scheduled concierge tasks, currently the pickup
// reminders queued when a ride is booked.
type Worker struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	requests transportRepo.TransportRepository
}

func NewWorker(requests transportRepo.TransportRepository) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			"default": 1,
		},
	})
	w := &Worker{
		server:   server,
		mux:      asynq.NewServeMux(),
		requests: requests,
	}
	w.mux.HandleFunc(TypeTransportReminder, w.handleTransportReminder)
	return w
}

// Start runs the worker loop in its own goroutine.
func (w *Worker) Start() {
	go func() {
		utils.GetLogger().Info("Reminder worker started")
		if err := w.server.Run(w.mux); err != nil {
			utils.GetLogger().Error("Reminder worker stopped", zap.Error(err))
		}
	}()
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
}

// handleTransportReminder fires shortly before pickup: it confirms the
// request with the fleet and notifies the guest's room.
func (w *Worker) handleTransportReminder(ctx context.Context, task *asynq.Task) error {
	var payload ReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode reminder payload: %w", err)
	}

	req, err := w.requests.GetByID(ctx, payload.RequestID)
	if err != nil {
		return fmt.Errorf("reminder for unknown request %s: %w", payload.RequestID, err)
	}
	if req.Status == models.TransportStatusCancelled || req.Status == models.TransportStatusCompleted {
		utils.GetLogger().Info("Skipping reminder for closed request",
			zap.String("requestId", req.ID), zap.String("status", req.Status))
		return nil
	}

	if req.Status == models.TransportStatusPending {
		if err := w.requests.UpdateStatus(ctx, req.ID, models.TransportStatusConfirmed); err != nil {
			return fmt.Errorf("failed to confirm request %s: %w", req.ID, err)
		}
	}

	utils.GetLogger().Info("Pickup reminder delivered",
		zap.String("requestId", req.ID),
		zap.String("room", payload.RoomNumber),
		zap.String("destination", req.Destination),
		zap.Time("pickup", req.PickupTime))
	return nil
}
