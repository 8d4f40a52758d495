package models

import "time"

// ChatMessage is a single turn in a conversation history.
type ChatMessage struct {
	Role      string    `bson:"role" json:"role"` // "user" or "assistant"
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// Conversation is the persisted record for one (guest, session) pair.
type Conversation struct {
	ID           string        `bson:"id" json:"id"`
	GuestID      string        `bson:"guestId" json:"guest_id"`
	SessionID    string        `bson:"sessionId" json:"session_id"`
	History      []ChatMessage `bson:"history" json:"history"`
	StartTime    time.Time     `bson:"startTime" json:"start_time"`
	LastActivity time.Time     `bson:"lastActivity" json:"last_activity"`
}

// TransportationSlots groups the slot-filling state for a transportation
// request in progress.
type TransportationSlots struct {
	Destination   string `json:"destination,omitempty"`
	PickupTime    string `json:"pickupTime,omitempty"`
	VehicleType   string `json:"vehicleType,omitempty"`
	NumPassengers int    `json:"numPassengers,omitempty"`
	SpecialNotes  string `json:"specialNotes,omitempty"`
}

// RoomServiceState accumulates ordering signals across turns.
type RoomServiceState struct {
	FoodPreferences []string `json:"foodPreferences,omitempty"`
}

// RecommendationState caches the most recent recommendation batch so
// follow-up turns can resolve ordinal references ("el segundo").
type RecommendationState struct {
	Interests             []string         `json:"interests,omitempty"`
	CurrentCategory       string           `json:"currentCategory,omitempty"`
	LastRecommendedPlaces []string         `json:"lastRecommendedPlaces,omitempty"`
	AllRecommendations    []Recommendation `json:"allRecommendations,omitempty"`
}

// ConversationContext is the per-conversation state carried across turns.
// It is owned exclusively by the dialogue manager: mutated once per turn and
// persisted by the context store between turns.
type ConversationContext struct {
	CurrentIntent  Intent `json:"currentIntent,omitempty"`
	PreviousIntent Intent `json:"previousIntent,omitempty"`

	// Awaiting names the single slot the system is trying to fill; non-empty
	// only while CurrentIntent is transportation with incomplete slots.
	Awaiting string `json:"awaiting,omitempty"`

	// LastMentionedDestination is the fallback destination source when a
	// transportation request omits an explicit one.
	LastMentionedDestination string `json:"lastMentionedDestination,omitempty"`

	// IntentHistory and KnownEntities are capped at MaxConversationHistory
	// entries, oldest dropped first.
	IntentHistory []Intent `json:"intentHistory,omitempty"`
	KnownEntities []string `json:"knownEntities,omitempty"`

	Transportation TransportationSlots `json:"transportation,omitempty"`
	RoomService    RoomServiceState    `json:"roomService,omitempty"`
	Recommendation RecommendationState `json:"recommendation,omitempty"`

	// Extra holds raw entity echoes that have no dedicated field.
	Extra map[string]string `json:"extra,omitempty"`

	LastUpdated  time.Time `json:"lastUpdated,omitempty"`
	LastResponse time.Time `json:"lastResponse,omitempty"`
}

// Clone returns a deep copy so a failed turn never mutates the stored context.
func (c ConversationContext) Clone() ConversationContext {
	out := c
	out.IntentHistory = append([]Intent(nil), c.IntentHistory...)
	out.KnownEntities = append([]string(nil), c.KnownEntities...)
	out.RoomService.FoodPreferences = append([]string(nil), c.RoomService.FoodPreferences...)
	out.Recommendation.Interests = append([]string(nil), c.Recommendation.Interests...)
	out.Recommendation.LastRecommendedPlaces = append([]string(nil), c.Recommendation.LastRecommendedPlaces...)
	out.Recommendation.AllRecommendations = append([]Recommendation(nil), c.Recommendation.AllRecommendations...)
	if c.Extra != nil {
		out.Extra = make(map[string]string, len(c.Extra))
		for k, v := range c.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// HasKnownEntity reports whether the slot name was already recorded.
func (c ConversationContext) HasKnownEntity(name string) bool {
	for _, k := range c.KnownEntities {
		if k == name {
			return true
		}
	}
	return false
}
