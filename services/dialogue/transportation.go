package dialogue

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"arame/config"
	"arame/models"
	"arame/services/transportation"
)

const (
	awaitingDestination = "destination"
	awaitingVehicle     = "vehicle_type"
	awaitingPickupTime  = "pickup_time"
)

// handleTransportation runs the slot-filling flow: fill what this turn
// provided, ask for the first missing slot, and book once destination,
// vehicle and pickup time are all known.
func (m *Manager) handleTransportation(ctx context.Context, guest models.Guest, c *models.ConversationContext, entities models.EntitySet, message string) (string, error) {
	m.absorbAwaitedSlot(c, entities, message)

	slots := &c.Transportation
	if slots.Destination == "" {
		slots.Destination = m.fallbackDestination(c)
	}
	if slots.VehicleType == "" {
		slots.VehicleType = preferredVehicle(guest)
	}

	switch {
	case slots.Destination == "":
		c.Awaiting = awaitingDestination
		return "¡Claro que sí! ¿A dónde desea ir?", nil
	case slots.VehicleType == "":
		c.Awaiting = awaitingVehicle
		return vehicleQuestion(), nil
	case slots.PickupTime == "":
		c.Awaiting = awaitingPickupTime
		return fmt.Sprintf("Perfecto, lo llevamos a %s. ¿A qué hora desea que lo recojan?", slots.Destination), nil
	}

	req, err := m.transport.Schedule(ctx, guest, *slots)
	if err != nil {
		return "", err
	}

	c.Awaiting = ""
	c.LastMentionedDestination = slots.Destination
	c.Transportation = models.TransportationSlots{}
	// The booking is done; without this, the classifier's follow-up
	// fallback would keep pulling unrelated turns back into booking.
	c.PreviousIntent = c.CurrentIntent
	c.CurrentIntent = ""
	return transportation.Confirmation(req), nil
}

// absorbAwaitedSlot applies the raw message to the slot we asked for
// when entity extraction found nothing usable in it.
func (m *Manager) absorbAwaitedSlot(c *models.ConversationContext, entities models.EntitySet, message string) {
	switch c.Awaiting {
	case awaitingDestination:
		if entities.Destination == "" && c.Transportation.Destination == "" {
			if dest := cleanDestination(message); dest != "" {
				c.Transportation.Destination = dest
				c.LastMentionedDestination = dest
			}
		}
	case awaitingVehicle:
		if entities.VehicleType == "" && c.Transportation.VehicleType == "" {
			if v := matchVehicle(message); v != "" {
				c.Transportation.VehicleType = v
			}
		}
	case awaitingPickupTime:
		if entities.PickupTime == "" && c.Transportation.PickupTime == "" {
			// The parse cascade at booking time understands relative
			// phrases like "en 20 minutos" that extraction does not.
			c.Transportation.PickupTime = message
		}
	}
	c.Awaiting = ""
}

func (m *Manager) fallbackDestination(c *models.ConversationContext) string {
	if c.LastMentionedDestination != "" {
		return c.LastMentionedDestination
	}
	if len(c.Recommendation.AllRecommendations) > 0 {
		return c.Recommendation.AllRecommendations[0].Name
	}
	return ""
}

// preferredVehicle maps the guest's stated transport preference to a
// bookable vehicle type.
func preferredVehicle(guest models.Guest) string {
	pref := strings.ToLower(strings.TrimSpace(guest.Preferences.Transport))
	if pref == "" {
		return ""
	}
	if _, ok := config.TransportationOptions[pref]; ok {
		return pref
	}
	return matchVehicle(pref)
}

// destination prefixes guests use when answering "¿a dónde desea ir?".
var destinationPrefixes = []string{
	"quiero ir a la", "quiero ir al", "quiero ir a",
	"necesito ir a la", "necesito ir al", "necesito ir a",
	"vamos a la", "vamos al", "vamos a",
	"voy a la", "voy al", "voy a",
	"ir a la", "ir al", "ir a",
	"hasta la", "hasta el", "hasta",
	"hacia la", "hacia el", "hacia",
	"para la", "para el", "para",
	"a la", "al", "a",
	"el", "la", "los", "las",
}

// ambiguousPlaces are answers that name no place at all.
var ambiguousPlaces = map[string]bool{
	"ahi": true, "ahí": true, "alla": true, "allá": true,
	"aca": true, "acá": true, "aqui": true, "aquí": true,
	"si": true, "sí": true, "no": true, "ok": true,
}

// cleanDestination turns a free-text answer into a destination name,
// or empty when the answer is too vague to book against.
func cleanDestination(message string) string {
	dest := strings.ToLower(strings.TrimSpace(message))
	dest = strings.Trim(dest, "¿?¡!.,")

	for _, prefix := range destinationPrefixes {
		if strings.HasPrefix(dest, prefix+" ") {
			dest = strings.TrimSpace(strings.TrimPrefix(dest, prefix+" "))
			break
		}
	}

	if len([]rune(dest)) < 3 || ambiguousPlaces[dest] {
		return ""
	}
	return dest
}

// matchVehicle resolves a vehicle answer against the bookable options,
// by key or by words of the display label.
func matchVehicle(message string) string {
	lowered := strings.ToLower(message)

	keys := make([]string, 0, len(config.TransportationOptions))
	for key := range config.TransportationOptions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.Contains(lowered, strings.ReplaceAll(key, "_", " ")) {
			return key
		}
		label := strings.ToLower(config.TransportationOptions[key])
		for _, word := range strings.Fields(label) {
			if len(word) > 3 && strings.Contains(lowered, word) {
				return key
			}
		}
	}
	return ""
}

func vehicleQuestion() string {
	keys := make([]string, 0, len(config.TransportationOptions))
	for key := range config.TransportationOptions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// Dashes, not numbers: numbered bold lists are reserved for place
	// suggestions that ordinal follow-ups resolve against.
	var b strings.Builder
	b.WriteString("¿Qué tipo de vehículo prefiere?\n\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "- %s\n", config.TransportationOptions[key])
	}
	return b.String()
}
