package transportation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arame/config"
	"arame/cron"
	transportRepo "arame/database/repository/transport"
	"arame/models"
	"arame/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderEnqueuer schedules the pickup reminder task. Satisfied by
// *asynq.Client in production and stubbed in tests.
type ReminderEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TransportationService schedules rides with the front desk fleet.
type TransportationService interface {
	Schedule(ctx context.Context, guest models.Guest, slots models.TransportationSlots) (*models.TransportationRequest, error)
	GetStatus(ctx context.Context, requestID string) (*models.TransportationRequest, error)
	GetUpcoming(ctx context.Context, guestID string) ([]models.TransportationRequest, error)
	UpdateStatus(ctx context.Context, requestID, status string) error
}

type DefaultTransportationService struct {
	requests transportRepo.TransportRepository
	enqueuer ReminderEnqueuer
	now      func() time.Time
}

func NewTransportationService(requests transportRepo.TransportRepository, enqueuer ReminderEnqueuer) *DefaultTransportationService {
	return &DefaultTransportationService{
		requests: requests,
		enqueuer: enqueuer,
		now:      time.Now,
	}
}

// Schedule persists the request and queues the pickup reminder. A
// reminder that cannot be queued is logged, not surfaced: the ride
// itself is already booked.
func (s *DefaultTransportationService) Schedule(ctx context.Context, guest models.Guest, slots models.TransportationSlots) (*models.TransportationRequest, error) {
	if slots.Destination == "" {
		return nil, fmt.Errorf("destination is required")
	}

	now := s.now()
	pickup := ParsePickupTime(slots.PickupTime, now)

	vehicle := slots.VehicleType
	if vehicle == "" {
		vehicle = "taxi"
	}
	passengers := slots.NumPassengers
	if passengers <= 0 {
		passengers = 1
	}

	req := models.TransportationRequest{
		GuestID:       guest.ID,
		PickupTime:    pickup,
		Destination:   slots.Destination,
		NumPassengers: passengers,
		VehicleType:   vehicle,
		SpecialNotes:  slots.SpecialNotes,
		Status:        models.TransportStatusPending,
	}
	id, err := s.requests.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule transportation: %w", err)
	}
	req.ID = id

	s.enqueueReminder(req, guest)

	utils.GetLogger().Info("Transportation scheduled",
		zap.String("requestId", id),
		zap.String("destination", req.Destination),
		zap.Time("pickup", pickup))
	return &req, nil
}

func (s *DefaultTransportationService) enqueueReminder(req models.TransportationRequest, guest models.Guest) {
	if s.enqueuer == nil {
		return
	}
	task, fireAt, err := cron.NewTransportReminderTask(cron.ReminderPayload{
		RequestID:  req.ID,
		GuestID:    guest.ID,
		RoomNumber: guest.RoomNumber,
		PickupTime: req.PickupTime,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to build pickup reminder", zap.Error(err))
		return
	}
	if _, err := s.enqueuer.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		utils.GetLogger().Error("Failed to enqueue pickup reminder",
			zap.String("requestId", req.ID), zap.Error(err))
	}
}

func (s *DefaultTransportationService) GetStatus(ctx context.Context, requestID string) (*models.TransportationRequest, error) {
	return s.requests.GetByID(ctx, requestID)
}

func (s *DefaultTransportationService) GetUpcoming(ctx context.Context, guestID string) ([]models.TransportationRequest, error) {
	return s.requests.GetUpcomingByGuest(ctx, guestID, s.now())
}

// validTransitions encodes the request lifecycle: pending may be
// confirmed or cancelled, confirmed may complete or cancel.
var validTransitions = map[string][]string{
	models.TransportStatusPending:   {models.TransportStatusConfirmed, models.TransportStatusCancelled},
	models.TransportStatusConfirmed: {models.TransportStatusCompleted, models.TransportStatusCancelled},
}

func (s *DefaultTransportationService) UpdateStatus(ctx context.Context, requestID, status string) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	allowed := false
	for _, next := range validTransitions[req.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move request from %s to %s", req.Status, status)
	}
	return s.requests.UpdateStatus(ctx, requestID, status)
}

// Confirmation builds the chat reply for a scheduled ride.
func Confirmation(req *models.TransportationRequest) string {
	vehicleLabel := config.TransportationOptions[req.VehicleType]
	if vehicleLabel == "" {
		vehicleLabel = req.VehicleType
	}
	var b strings.Builder
	b.WriteString("¡Listo! Su transporte está programado:\n\n")
	fmt.Fprintf(&b, "- Destino: %s\n", capitalize(req.Destination))
	fmt.Fprintf(&b, "- Vehículo: %s\n", vehicleLabel)
	fmt.Fprintf(&b, "- Hora de recogida: %s\n", req.PickupTime.Format("3:04 PM"))
	fmt.Fprintf(&b, "- Pasajeros: %d\n", req.NumPassengers)
	if req.SpecialNotes != "" {
		fmt.Fprintf(&b, "- Notas: %s\n", req.SpecialNotes)
	}
	fmt.Fprintf(&b, "\nEl vehículo lo esperará en la entrada principal del %s. ", config.HotelName)
	fmt.Fprintf(&b, "Le enviaré un recordatorio 15 minutos antes. Su número de solicitud es %s.", req.ID)
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
