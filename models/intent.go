package models

// Intent is the discrete category of what the guest wants in a single turn.
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentFarewell       Intent = "farewell"
	IntentThanks         Intent = "thanks"
	IntentHelp           Intent = "help"
	IntentRecommendation Intent = "recommendation"
	IntentRoomService    Intent = "room_service"
	IntentTransportation Intent = "transportation"
	IntentWeather        Intent = "weather"
	IntentFAQ            Intent = "faq"
	IntentQuestion       Intent = "question"
)

// EntitySet carries the structured slots pulled out of one message. The zero
// value of each field means the slot was not found; Text always echoes the
// raw message for slot-filling follow-ups.
type EntitySet struct {
	Category            string   `json:"category,omitempty"`
	TimePeriod          string   `json:"time_period,omitempty"`
	OrderItems          []string `json:"order_items,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
	Destination         string   `json:"destination,omitempty"`
	// Time and PickupTime carry the same normalized value under two names.
	Time          string `json:"time,omitempty"`
	PickupTime    string `json:"pickup_time,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	NumPassengers int    `json:"num_passengers,omitempty"`
	Text          string `json:"text,omitempty"`
}

// Slots returns the names of the populated slots in declaration order.
// Text is excluded: it is an echo, not an extracted entity.
func (e EntitySet) Slots() []string {
	var slots []string
	if e.Category != "" {
		slots = append(slots, "category")
	}
	if e.TimePeriod != "" {
		slots = append(slots, "time_period")
	}
	if len(e.OrderItems) > 0 {
		slots = append(slots, "order_items")
	}
	if e.SpecialInstructions != "" {
		slots = append(slots, "special_instructions")
	}
	if e.Destination != "" {
		slots = append(slots, "destination")
	}
	if e.Time != "" {
		slots = append(slots, "time")
	}
	if e.PickupTime != "" {
		slots = append(slots, "pickup_time")
	}
	if e.VehicleType != "" {
		slots = append(slots, "vehicle_type")
	}
	if e.NumPassengers > 0 {
		slots = append(slots, "num_passengers")
	}
	return slots
}
