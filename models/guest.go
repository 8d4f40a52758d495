package models

import "time"

// GuestPreferences is the onboarding preference blob collected before chat.
type GuestPreferences struct {
	TripType  string   `bson:"tripType" json:"trip_type"`
	Interests []string `bson:"interests" json:"interests"`
	Diet      string   `bson:"diet" json:"diet"`
	Transport string   `bson:"transport" json:"transport"`
}

// Guest is a checked-in hotel guest.
type Guest struct {
	ID           string           `bson:"id" json:"id"`
	Name         string           `bson:"name" json:"name"`
	RoomNumber   string           `bson:"roomNumber" json:"room_number"`
	CheckInDate  time.Time        `bson:"checkInDate" json:"check_in_date"`
	CheckOutDate *time.Time       `bson:"checkOutDate,omitempty" json:"check_out_date,omitempty"`
	PhoneNumber  string           `bson:"phoneNumber,omitempty" json:"phone_number,omitempty"`
	Email        string           `bson:"email,omitempty" json:"email,omitempty"`
	Preferences  GuestPreferences `bson:"preferences" json:"preferences"`
	IsActive     bool             `bson:"isActive" json:"is_active"`
	Language     string           `bson:"language" json:"language"`
}
