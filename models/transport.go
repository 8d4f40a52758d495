package models

import "time"

// Valid transportation request statuses.
const (
	TransportStatusPending   = "pending"
	TransportStatusConfirmed = "confirmed"
	TransportStatusCompleted = "completed"
	TransportStatusCancelled = "cancelled"
)

// TransportationRequest is a persisted ride request.
type TransportationRequest struct {
	ID            string    `bson:"id" json:"id"`
	GuestID       string    `bson:"guestId" json:"guest_id"`
	PickupTime    time.Time `bson:"pickupTime" json:"pickup_time"`
	Destination   string    `bson:"destination" json:"destination"`
	NumPassengers int       `bson:"numPassengers" json:"num_passengers"`
	VehicleType   string    `bson:"vehicleType" json:"vehicle_type"`
	SpecialNotes  string    `bson:"specialNotes,omitempty" json:"special_notes,omitempty"`
	Status        string    `bson:"status" json:"status"`
	RequestDate   time.Time `bson:"requestDate" json:"request_date"`
}
