package transportation

import (
	"context"
	"testing"
	"time"

	"arame/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransportRepo struct {
	created []models.TransportationRequest
}

func (f *fakeTransportRepo) Create(_ context.Context, req models.TransportationRequest) (string, error) {
	req.ID = uuid.New().String()
	f.created = append(f.created, req)
	return req.ID, nil
}

func (f *fakeTransportRepo) GetByID(_ context.Context, id string) (*models.TransportationRequest, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeTransportRepo) GetUpcomingByGuest(_ context.Context, guestID string, after time.Time) ([]models.TransportationRequest, error) {
	var out []models.TransportationRequest
	for _, r := range f.created {
		if r.GuestID == guestID && r.PickupTime.After(after) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTransportRepo) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].Status = status
			return nil
		}
	}
	return assert.AnError
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
}

func (f *fakeEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func newTestService(repo *fakeTransportRepo, enq *fakeEnqueuer, now time.Time) *DefaultTransportationService {
	svc := NewTransportationService(repo, enq)
	svc.now = func() time.Time { return now }
	return svc
}

func TestParsePickupTime(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{"relative minutes", "en 20 minutos", now.Add(20 * time.Minute)},
		{"half hour", "en media hora por favor", now.Add(30 * time.Minute)},
		{"relative hours", "en 2 horas", now.Add(2 * time.Hour)},
		{"clock time later today", "a las 9:30 pm", time.Date(2026, 3, 10, 21, 30, 0, 0, time.Local)},
		{"clock time already past rolls to tomorrow", "a las 8 de la mañana", time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)},
		{"tomorrow with clock time", "mañana a las 10:00 am", time.Date(2026, 3, 11, 10, 0, 0, 0, time.Local)},
		{"unparseable defaults to 30 minutes", "cuando puedan", now.Add(30 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePickupTime(tt.phrase, now))
		})
	}
}

func TestScheduleCreatesRequestAndReminder(t *testing.T) {
	repo := &fakeTransportRepo{}
	enq := &fakeEnqueuer{}
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	svc := newTestService(repo, enq, now)

	guest := models.Guest{ID: "g-1", RoomNumber: "804"}
	req, err := svc.Schedule(context.Background(), guest, models.TransportationSlots{
		Destination: "aeropuerto",
		PickupTime:  "a las 6 pm",
		VehicleType: "suv",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, req.ID)
	assert.Equal(t, "aeropuerto", req.Destination)
	assert.Equal(t, "suv", req.VehicleType)
	assert.Equal(t, 1, req.NumPassengers)
	assert.Equal(t, models.TransportStatusPending, req.Status)
	assert.Equal(t, 18, req.PickupTime.Hour())

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, "transport:reminder", enq.tasks[0].Type())
}

func TestScheduleDefaults(t *testing.T) {
	repo := &fakeTransportRepo{}
	svc := newTestService(repo, &fakeEnqueuer{}, time.Now())

	req, err := svc.Schedule(context.Background(), models.Guest{ID: "g-1"}, models.TransportationSlots{
		Destination: "el poblado",
	})
	require.NoError(t, err)
	assert.Equal(t, "taxi", req.VehicleType)
	assert.Equal(t, 1, req.NumPassengers)
}

func TestScheduleRequiresDestination(t *testing.T) {
	svc := newTestService(&fakeTransportRepo{}, &fakeEnqueuer{}, time.Now())
	_, err := svc.Schedule(context.Background(), models.Guest{}, models.TransportationSlots{})
	assert.Error(t, err)
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := &fakeTransportRepo{}
	svc := newTestService(repo, &fakeEnqueuer{}, time.Now())

	req, err := svc.Schedule(context.Background(), models.Guest{ID: "g-1"}, models.TransportationSlots{Destination: "centro"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(context.Background(), req.ID, models.TransportStatusConfirmed))
	require.NoError(t, svc.UpdateStatus(context.Background(), req.ID, models.TransportStatusCompleted))

	err = svc.UpdateStatus(context.Background(), req.ID, models.TransportStatusCancelled)
	assert.Error(t, err, "completed requests cannot be cancelled")
}

func TestConfirmationMentionsRequest(t *testing.T) {
	req := &models.TransportationRequest{
		ID:            "req-9",
		Destination:   "aeropuerto",
		VehicleType:   "taxi",
		NumPassengers: 2,
		PickupTime:    time.Date(2026, 3, 10, 18, 30, 0, 0, time.Local),
	}
	msg := Confirmation(req)
	assert.Contains(t, msg, "Aeropuerto")
	assert.Contains(t, msg, "Taxi estándar")
	assert.Contains(t, msg, "6:30 PM")
	assert.Contains(t, msg, "req-9")
}
