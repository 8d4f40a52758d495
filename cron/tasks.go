package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeTransportReminder = "transport:reminder"

// ReminderPayload identifies the transportation request to remind the
// guest about shortly before pickup.
type ReminderPayload struct {
	RequestID  string    `json:"request_id"`
	GuestID    string    `json:"guest_id"`
	RoomNumber string    `json:"room_number"`
	PickupTime time.Time `json:"pickup_time"`
}

// NewTransportReminderTask builds the reminder task, scheduled to fire
// 15 minutes before pickup (immediately when pickup is closer).
func NewTransportReminderTask(payload ReminderPayload) (*asynq.Task, time.Time, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to marshal reminder payload: %w", err)
	}
	fireAt := payload.PickupTime.Add(-15 * time.Minute)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}
	task := asynq.NewTask(TypeTransportReminder, data, asynq.MaxRetry(3), asynq.Timeout(30*time.Second))
	return task, fireAt, nil
}
