package ai

import (
	"fmt"
	"strings"

	"arame/config"
	"arame/models"
)

// maxVerbatimHistory is how many recent turns go into the prompt as-is.
// Anything older gets summarized into a single line first.
const maxVerbatimHistory = 10

// PromptInput is everything the responder grounds a reply on.
type PromptInput struct {
	Message        string
	Guest          models.Guest
	Context        models.ConversationContext
	History        []models.ChatMessage
	HistorySummary string
	Weather        models.Weather
}

// BuildPrompt assembles the grounded instruction for the model. The
// persona and hotel facts come first, then per-conversation state, so
// the model answers as the concierge and not as a generic assistant.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Eres %s, la concierge digital del %s en Medellín, Colombia.\n", config.AssistantName, config.HotelName)
	b.WriteString("Respondes siempre en español, con calidez paisa y profesionalismo. ")
	b.WriteString("Eres breve: máximo tres párrafos cortos. Nunca inventas servicios ni precios que no conoces. ")
	b.WriteString("Si no puedes resolver algo, ofreces comunicar al huésped con la recepción marcando el 0.\n\n")

	b.WriteString("Datos del hotel:\n")
	fmt.Fprintf(&b, "- Dirección: %s\n", config.HotelAddress)
	for key, facility := range hotelFactLines() {
		fmt.Fprintf(&b, "- %s: %s\n", key, facility)
	}
	b.WriteString("\n")

	if in.Guest.Name != "" {
		fmt.Fprintf(&b, "Huésped: %s, habitación %s.\n", in.Guest.Name, in.Guest.RoomNumber)
		if len(in.Guest.Preferences.Interests) > 0 {
			fmt.Fprintf(&b, "Intereses del huésped: %s.\n", strings.Join(in.Guest.Preferences.Interests, ", "))
		}
		if in.Guest.Preferences.Diet != "" {
			fmt.Fprintf(&b, "Dieta del huésped: %s.\n", in.Guest.Preferences.Diet)
		}
	}

	if in.Weather.Condition != "" {
		fmt.Fprintf(&b, "Clima actual en Medellín: %s, %.0f°C.\n", in.Weather.Condition, in.Weather.Temperature)
	}

	if snippet := contextSnippet(in.Context); snippet != "" {
		fmt.Fprintf(&b, "Contexto de la conversación: %s\n", snippet)
	}

	b.WriteString("\n")
	if in.HistorySummary != "" {
		fmt.Fprintf(&b, "Resumen de la conversación anterior: %s\n\n", in.HistorySummary)
	}
	for _, turn := range in.History {
		role := "Huésped"
		if turn.Role == "assistant" {
			role = config.AssistantName
		}
		fmt.Fprintf(&b, "%s: %s\n", role, turn.Content)
	}

	fmt.Fprintf(&b, "Huésped: %s\n", in.Message)
	fmt.Fprintf(&b, "%s:", config.AssistantName)
	return b.String()
}

// contextSnippet condenses the dialogue state into one line of prompt.
func contextSnippet(c models.ConversationContext) string {
	var parts []string
	if c.CurrentIntent != "" {
		parts = append(parts, fmt.Sprintf("el tema actual es %s", c.CurrentIntent))
	}
	if c.Transportation.Destination != "" {
		parts = append(parts, fmt.Sprintf("el huésped mencionó ir a %s", c.Transportation.Destination))
	}
	if c.Recommendation.CurrentCategory != "" {
		parts = append(parts, fmt.Sprintf("se le recomendaron lugares de tipo %s", c.Recommendation.CurrentCategory))
	}
	if len(c.Recommendation.LastRecommendedPlaces) > 0 {
		parts = append(parts, "últimos lugares sugeridos: "+strings.Join(c.Recommendation.LastRecommendedPlaces, ", "))
	}
	if len(c.RoomService.FoodPreferences) > 0 {
		parts = append(parts, "al huésped le interesa: "+strings.Join(c.RoomService.FoodPreferences, ", "))
	}
	return strings.Join(parts, "; ")
}

func hotelFactLines() map[string]string {
	facts := make(map[string]string, len(config.Facilities))
	labels := map[string]string{
		"breakfast":       "Desayuno",
		"wifi":            "WiFi",
		"pool":            "Piscina",
		"spa":             "Spa",
		"gym":             "Gimnasio",
		"business_center": "Centro de negocios",
		"checkout":        "Check-out",
		"parking":         "Parqueadero",
		"room_service":    "Servicio a la habitación",
	}
	for key, facility := range config.Facilities {
		label := labels[key]
		if label == "" {
			label = key
		}
		var pieces []string
		if facility.Hours != "" {
			pieces = append(pieces, facility.Hours)
		}
		if facility.Location != "" {
			pieces = append(pieces, facility.Location)
		}
		facts[label] = strings.Join(pieces, ", ")
	}
	return facts
}

// SplitHistory separates the turns that go into the prompt verbatim
// from the older ones that need summarizing.
func SplitHistory(history []models.ChatMessage) (older, recent []models.ChatMessage) {
	if len(history) <= maxVerbatimHistory {
		return nil, history
	}
	cut := len(history) - maxVerbatimHistory
	return history[:cut], history[cut:]
}
