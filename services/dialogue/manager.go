package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"arame/config"
	conversationRepo "arame/database/repository/conversation"
	guestRepo "arame/database/repository/guest"
	"arame/models"
	"arame/services/ai"
	"arame/services/faq"
	"arame/services/nlp"
	"arame/services/recommendation"
	"arame/services/roomservice"
	"arame/services/transportation"
	"arame/services/weather"
	"arame/utils"

	"go.uber.org/zap"
)

// apologyReply is the fail-safe answer: whatever broke mid-turn, the
// guest gets a polite retry and the stored context stays as it was.
const apologyReply = "Disculpe, tuve un inconveniente procesando su mensaje. " +
	"¿Podría repetirlo, por favor? Si es urgente, puede marcar 0 para hablar con la recepción."

// WeatherProvider is the slice of the weather cache the manager needs.
type WeatherProvider interface {
	Get(ctx context.Context) models.Weather
}

// Manager orchestrates one chat turn: classify, extract, update the
// conversation context, then route to a handler or the generative
// responder.
type Manager struct {
	store         ContextStore
	guests        guestRepo.GuestRepository
	conversations conversationRepo.ConversationRepository
	faqs          faq.FAQService
	roomService   roomservice.RoomServiceService
	transport     transportation.TransportationService
	recommender   recommendation.RecommendationService
	weather       WeatherProvider
	responder     ai.Responder
}

type ManagerDeps struct {
	Store         ContextStore
	Guests        guestRepo.GuestRepository
	Conversations conversationRepo.ConversationRepository
	FAQs          faq.FAQService
	RoomService   roomservice.RoomServiceService
	Transport     transportation.TransportationService
	Recommender   recommendation.RecommendationService
	Weather       WeatherProvider
	Responder     ai.Responder
}

func NewManager(deps ManagerDeps) *Manager {
	return &Manager{
		store:         deps.Store,
		guests:        deps.Guests,
		conversations: deps.Conversations,
		faqs:          deps.FAQs,
		roomService:   deps.RoomService,
		transport:     deps.Transport,
		recommender:   deps.Recommender,
		weather:       deps.Weather,
		responder:     deps.Responder,
	}
}

// Process runs one turn for a guest session and returns the reply.
// On any failure inside the turn the guest gets the apology reply and
// the previously stored context is preserved untouched.
func (m *Manager) Process(ctx context.Context, guestID, sessionID, message string) (string, error) {
	guest, err := m.guests.GetByID(ctx, guestID)
	if err != nil {
		return "", fmt.Errorf("unknown guest: %w", err)
	}

	stored, err := m.store.Load(ctx, guestID, sessionID)
	if err != nil {
		utils.GetLogger().Warn("Context load failed, starting fresh", zap.Error(err))
		stored = models.ConversationContext{}
	}

	reply, updated := m.runTurn(ctx, *guest, sessionID, stored, message)

	if err := m.store.Save(ctx, guestID, sessionID, updated); err != nil {
		utils.GetLogger().Error("Failed to persist conversation context", zap.Error(err))
	}
	m.recordTranscript(ctx, guestID, sessionID, message, reply)

	return reply, nil
}

// runTurn executes the turn on a working copy of the context. A panic
// or handler error yields the apology and the original context.
func (m *Manager) runTurn(ctx context.Context, guest models.Guest, sessionID string, stored models.ConversationContext, message string) (reply string, out models.ConversationContext) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger().Error("Turn processing panicked",
				zap.Any("panic", r), zap.String("guestId", guest.ID))
			reply, out = apologyReply, stored
		}
	}()

	working := stored.Clone()

	intent, confidence := nlp.ClassifyIntent(message, &working)
	entities := nlp.ExtractEntities(message)
	m.updateContext(&working, intent, entities)

	utils.GetLogger().Debug("Turn classified",
		zap.String("intent", string(intent)),
		zap.Float64("confidence", confidence),
		zap.Strings("slots", entities.Slots()))

	reply, err := m.route(ctx, guest, sessionID, &working, intent, confidence, entities, message)
	if err != nil {
		utils.GetLogger().Error("Turn handler failed",
			zap.String("intent", string(intent)), zap.Error(err))
		return apologyReply, stored
	}

	// Replies carrying a numbered place list refresh the follow-up
	// state no matter which path produced them.
	if names := ParseSuggestedPlaces(reply); len(names) > 0 {
		working.Recommendation.LastRecommendedPlaces = names
	}
	working.LastResponse = time.Now()
	return reply, working
}

// updateContext folds this turn's classification and entities into the
// working context.
func (m *Manager) updateContext(c *models.ConversationContext, intent models.Intent, entities models.EntitySet) {
	capSize := config.AppConfig.MaxConversationHistory
	if capSize <= 0 {
		capSize = 20
	}

	c.PreviousIntent = c.CurrentIntent
	c.CurrentIntent = intent
	c.IntentHistory = append(c.IntentHistory, intent)
	if len(c.IntentHistory) > capSize {
		c.IntentHistory = c.IntentHistory[len(c.IntentHistory)-capSize:]
	}

	for _, slot := range entities.Slots() {
		if !c.HasKnownEntity(slot) {
			c.KnownEntities = append(c.KnownEntities, slot)
		}
	}
	if len(c.KnownEntities) > capSize {
		c.KnownEntities = c.KnownEntities[len(c.KnownEntities)-capSize:]
	}

	if entities.Destination != "" {
		c.LastMentionedDestination = entities.Destination
		c.Transportation.Destination = entities.Destination
	}
	if entities.PickupTime != "" {
		c.Transportation.PickupTime = entities.PickupTime
	}
	if entities.VehicleType != "" {
		c.Transportation.VehicleType = entities.VehicleType
	}
	if entities.NumPassengers > 0 {
		c.Transportation.NumPassengers = entities.NumPassengers
	}
	if entities.SpecialInstructions != "" {
		c.Transportation.SpecialNotes = entities.SpecialInstructions
	}
	if entities.Category != "" {
		c.Recommendation.CurrentCategory = entities.Category
		if intent == models.IntentRecommendation && !containsString(c.Recommendation.Interests, entities.Category) {
			c.Recommendation.Interests = append(c.Recommendation.Interests, entities.Category)
		}
	}
	for _, item := range entities.OrderItems {
		if !containsString(c.RoomService.FoodPreferences, item) {
			c.RoomService.FoodPreferences = append(c.RoomService.FoodPreferences, item)
		}
	}
}

// route picks the reply source for the turn. Low-confidence turns and
// open questions go to the generative responder; everything else has a
// dedicated handler.
func (m *Manager) route(ctx context.Context, guest models.Guest, sessionID string, c *models.ConversationContext, intent models.Intent, confidence float64, entities models.EntitySet, message string) (string, error) {
	if intent == models.IntentTransportation {
		return m.handleTransportation(ctx, guest, c, entities, message)
	}

	// "Cuéntame más del segundo" and "fotos del Pueblito Paisa" style
	// follow-ups outrank the confidence gate: they classify weakly but
	// have an exact answer.
	if intent == models.IntentRecommendation || intent == models.IntentQuestion || intent == models.IntentFAQ {
		if reply, handled := m.handlePlaceFollowUp(ctx, c, message); handled {
			return reply, nil
		}
	}

	if confidence < nlp.MinHandlerConfidence {
		return m.generate(ctx, guest, sessionID, c, message)
	}

	switch intent {
	case models.IntentGreeting:
		return m.greet(guest), nil
	case models.IntentFarewell:
		return fmt.Sprintf("¡Hasta pronto! Que disfrute su estadía en el %s. Aquí estaré cuando me necesite.", config.HotelName), nil
	case models.IntentThanks:
		return "¡Con mucho gusto! Para eso estoy. ¿Hay algo más en lo que pueda ayudarle?", nil
	case models.IntentHelp:
		return m.helpText(), nil
	case models.IntentRoomService:
		return m.handleRoomService(ctx, guest, c, entities)
	case models.IntentRecommendation:
		return m.handleRecommendation(ctx, guest, c, entities)
	case models.IntentWeather:
		return weather.Describe(m.weather.Get(ctx)), nil
	case models.IntentFAQ, models.IntentQuestion:
		// Open questions get one shot at the FAQ catalog before the
		// model answers.
		if answer, matched := m.faqs.Answer(message); matched {
			return answer, nil
		}
		return m.generate(ctx, guest, sessionID, c, message)
	default:
		return m.generate(ctx, guest, sessionID, c, message)
	}
}

func (m *Manager) greet(guest models.Guest) string {
	if guest.Name != "" {
		first := strings.SplitN(guest.Name, " ", 2)[0]
		return fmt.Sprintf("¡Hola, %s! Soy %s, su concierge digital del %s. "+
			"Puedo ayudarle con recomendaciones, servicio a la habitación, transporte, "+
			"el clima o cualquier duda sobre el hotel. ¿En qué le colaboro?",
			first, config.AssistantName, config.HotelName)
	}
	return config.WelcomeMessage
}

func (m *Manager) helpText() string {
	return "Con gusto. Puedo ayudarle con:\n\n" +
		"- **Recomendaciones**: restaurantes, cafés, cultura y planes cerca del hotel.\n" +
		"- **Servicio a la habitación**: ver el menú y tomar su pedido.\n" +
		"- **Transporte**: programar taxis o vehículos privados.\n" +
		"- **Información del hotel**: horarios, WiFi, piscina, spa y más.\n" +
		"- **Clima**: cómo está el día en Medellín.\n\n" +
		"Solo dígame qué necesita."
}

func (m *Manager) handleRoomService(ctx context.Context, guest models.Guest, c *models.ConversationContext, entities models.EntitySet) (string, error) {
	if len(entities.OrderItems) == 0 {
		return m.roomService.FormatMenu(), nil
	}
	order, err := m.roomService.PlaceOrder(ctx, guest, entities.OrderItems, entities.SpecialInstructions)
	if err != nil {
		return "", err
	}
	return roomservice.Confirmation(order), nil
}

func (m *Manager) handleRecommendation(ctx context.Context, guest models.Guest, c *models.ConversationContext, entities models.EntitySet) (string, error) {
	category := entities.Category
	if category == "" {
		category = c.Recommendation.CurrentCategory
	}
	interests := append([]string(nil), guest.Preferences.Interests...)
	interests = append(interests, c.Recommendation.Interests...)

	recs, err := m.recommender.Recommend(ctx, recommendation.Request{
		Category:   category,
		TimePeriod: entities.TimePeriod,
		Interests:  interests,
		Weather:    m.weather.Get(ctx),
	})
	if err != nil {
		return "", err
	}

	c.Recommendation.CurrentCategory = category
	c.Recommendation.AllRecommendations = recs
	return recommendation.FormatSuggestions(recs, category), nil
}

// handlePlaceFollowUp answers follow-up turns about an already
// suggested place: ordinals against the last list, explicit place
// names, and photo or detail requests about either.
func (m *Manager) handlePlaceFollowUp(ctx context.Context, c *models.ConversationContext, message string) (string, bool) {
	suggested := c.Recommendation.LastRecommendedPlaces

	if idx, ok := OrdinalReference(message); ok {
		if idx < 0 || idx >= len(suggested) {
			return "", false
		}
		name := suggested[idx]
		rec, found := m.resolvePlace(ctx, c, name)
		if WantsPhotos(message) {
			if !found {
				rec = models.Recommendation{Name: name}
			}
			return m.photosReply(ctx, rec), true
		}
		if found {
			return m.recommender.Describe(ctx, rec), true
		}
		// The list came from a generative reply; all we have is the name.
		return fmt.Sprintf("Se refiere a **%s**. ¿Quiere que le dé más detalles o que le programe un transporte hasta allá?", name), true
	}

	candidates := append([]string(nil), suggested...)
	for _, rec := range c.Recommendation.AllRecommendations {
		candidates = append(candidates, rec.Name)
	}
	if name, ok := NamedPlace(message, candidates); ok {
		rec, found := m.resolvePlace(ctx, c, name)
		if WantsPhotos(message) {
			if !found {
				rec = models.Recommendation{Name: name}
			}
			return m.photosReply(ctx, rec), true
		}
		if found {
			return m.recommender.Describe(ctx, rec), true
		}
		return "", false
	}

	// A detail request about a place never suggested still resolves
	// when the catalog or the places provider knows the name.
	if query, ok := PlaceQuery(message); ok {
		if rec, err := m.recommender.Lookup(ctx, query); err == nil {
			if WantsPhotos(message) {
				return m.photosReply(ctx, *rec), true
			}
			return m.recommender.Describe(ctx, *rec), true
		}
	}
	return "", false
}

// resolvePlace finds a place by name in the current suggestion set,
// then in the catalog.
func (m *Manager) resolvePlace(ctx context.Context, c *models.ConversationContext, name string) (models.Recommendation, bool) {
	for _, rec := range c.Recommendation.AllRecommendations {
		if strings.EqualFold(rec.Name, name) {
			return rec, true
		}
	}
	if rec, err := m.recommender.Lookup(ctx, name); err == nil {
		return *rec, true
	}
	return models.Recommendation{}, false
}

func (m *Manager) photosReply(ctx context.Context, rec models.Recommendation) string {
	photos, err := m.recommender.Photos(ctx, rec)
	if err != nil || len(photos) == 0 {
		return fmt.Sprintf("Por ahora no tengo fotos a la mano de %s, "+
			"pero con gusto le cuento más del lugar o le programo un transporte hasta allá.", rec.Name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Aquí tiene algunas fotos de **%s**:\n\n", rec.Name)
	for _, photo := range photos {
		fmt.Fprintf(&b, "- %s\n", photo.URL)
	}
	b.WriteString("\n¿Le gustaría más información o un transporte hasta allá?")
	return b.String()
}

func (m *Manager) generate(ctx context.Context, guest models.Guest, sessionID string, c *models.ConversationContext, message string) (string, error) {
	history, err := m.conversations.GetHistory(ctx, guest.ID, sessionID, config.AppConfig.MaxConversationHistory)
	if err != nil {
		utils.GetLogger().Warn("Transcript unavailable for prompt", zap.Error(err))
		history = nil
	}
	return m.responder.Complete(ctx, ai.PromptInput{
		Message: message,
		Guest:   guest,
		Context: *c,
		History: history,
		Weather: m.weather.Get(ctx),
	})
}

func (m *Manager) recordTranscript(ctx context.Context, guestID, sessionID, message, reply string) {
	if _, err := m.conversations.GetOrCreate(ctx, guestID, sessionID); err != nil {
		utils.GetLogger().Warn("Could not open conversation transcript", zap.Error(err))
		return
	}
	now := time.Now()
	err := m.conversations.AppendTurns(ctx, guestID, sessionID, []models.ChatMessage{
		{Role: "user", Content: message, Timestamp: now},
		{Role: "assistant", Content: reply, Timestamp: now},
	})
	if err != nil {
		utils.GetLogger().Warn("Could not append conversation turns", zap.Error(err))
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
