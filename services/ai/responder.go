package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"arame/config"
	"arame/models"
	"arame/utils"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const (
	modelName = "gemini-1.5-flash"

	// historySummaryFallback stands in when the summarization call
	// itself fails; losing nuance beats losing the turn.
	historySummaryFallback = "El huésped ha estado conversando con la concierge sobre su estadía en el hotel."
)

// Responder produces the free-form replies for turns no handler claims.
type Responder interface {
	Complete(ctx context.Context, in PromptInput) (string, error)
}

// GeminiResponder implements Responder on Google's Gemini API.
type GeminiResponder struct {
	client *genai.Client
}

func NewGeminiResponder(ctx context.Context) (*GeminiResponder, error) {
	apiKey := config.AppConfig.GeminiAPIKey
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiResponder{client: client}, nil
}

func (r *GeminiResponder) Close() error {
	return r.client.Close()
}

// Complete builds the grounded prompt, summarizing overflow history
// first, and returns the post-processed model reply.
func (r *GeminiResponder) Complete(ctx context.Context, in PromptInput) (string, error) {
	older, recent := SplitHistory(in.History)
	in.History = recent
	if len(older) > 0 && in.HistorySummary == "" {
		in.HistorySummary = r.summarize(ctx, older)
	}

	model := r.client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(int32(config.AppConfig.MaxResponseTokens))
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(BuildPrompt(in)))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	text := extractText(resp)
	if text == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}
	return Conversationalize(text), nil
}

// summarize compresses older turns into one line for the prompt.
func (r *GeminiResponder) summarize(ctx context.Context, older []models.ChatMessage) string {
	var b strings.Builder
	b.WriteString("Resume en una sola frase en español de qué ha tratado esta conversación entre un huésped y una concierge de hotel:\n\n")
	for _, turn := range older {
		fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Content)
	}

	model := r.client.GenerativeModel(modelName)
	model.SetMaxOutputTokens(100)
	resp, err := model.GenerateContent(ctx, genai.Text(b.String()))
	if err != nil {
		utils.GetLogger().Warn("History summarization failed", zap.Error(err))
		return historySummaryFallback
	}
	summary := strings.TrimSpace(extractText(resp))
	if summary == "" {
		return historySummaryFallback
	}
	return summary
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}

var (
	signatureRe = regexp.MustCompile(`(?im)^\s*(atentamente|cordialmente|saludos cordiales|saludos|con cariño)[,.]?\s*$`)
	selfLabelRe = regexp.MustCompile(`(?i)^\s*(\*\*)?` + config.AssistantName + `(\*\*)?\s*:\s*`)
)

// Conversationalize strips letter-style artifacts the model sometimes
// adds so replies read like chat, not correspondence.
func Conversationalize(text string) string {
	text = selfLabelRe.ReplaceAllString(text, "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if signatureRe.MatchString(line) {
			lines = lines[:i]
			break
		}
	}
	out := strings.TrimSpace(strings.Join(lines, "\n"))
	out = strings.TrimSuffix(out, config.AssistantName)
	return strings.TrimSpace(out)
}
