package ai

import (
	"strings"
	"testing"
	"time"

	"arame/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptGroundsPersonaAndGuest(t *testing.T) {
	prompt := BuildPrompt(PromptInput{
		Message: "¿Qué me recomiendas hacer hoy?",
		Guest: models.Guest{
			Name:       "Carolina Restrepo",
			RoomNumber: "804",
			Preferences: models.GuestPreferences{
				Interests: []string{"arte", "gastronomía"},
			},
		},
		Context: models.ConversationContext{
			CurrentIntent: models.IntentRecommendation,
		},
	})

	assert.Contains(t, prompt, "Lina")
	assert.Contains(t, prompt, "Hotel Aramé")
	assert.Contains(t, prompt, "Carolina Restrepo")
	assert.Contains(t, prompt, "habitación 804")
	assert.Contains(t, prompt, "arte, gastronomía")
	assert.True(t, strings.HasSuffix(prompt, "Lina:"))
}

func TestBuildPromptIncludesContextSnippet(t *testing.T) {
	prompt := BuildPrompt(PromptInput{
		Message: "¿y cómo llego?",
		Context: models.ConversationContext{
			Transportation: models.TransportationSlots{Destination: "guatapé"},
			Recommendation: models.RecommendationState{
				LastRecommendedPlaces: []string{"El Cielo", "Pergamino Café"},
			},
		},
	})

	assert.Contains(t, prompt, "guatapé")
	assert.Contains(t, prompt, "El Cielo, Pergamino Café")
}

func TestSplitHistory(t *testing.T) {
	var history []models.ChatMessage
	for i := 0; i < 14; i++ {
		history = append(history, models.ChatMessage{Role: "user", Content: "turno", Timestamp: time.Now()})
	}

	older, recent := SplitHistory(history)
	assert.Len(t, older, 4)
	assert.Len(t, recent, 10)

	older, recent = SplitHistory(history[:6])
	assert.Nil(t, older)
	assert.Len(t, recent, 6)
}

func TestConversationalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "strips assistant label",
			in:   "Lina: Con gusto le ayudo con eso.",
			want: "Con gusto le ayudo con eso.",
		},
		{
			name: "cuts letter signature",
			in:   "Aquí tiene la información.\n\nSaludos cordiales,\nLina",
			want: "Aquí tiene la información.",
		},
		{
			name: "plain text untouched",
			in:   "La piscina abre a las 6:00 AM.",
			want: "La piscina abre a las 6:00 AM.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conversationalize(tt.in))
		})
	}
}
