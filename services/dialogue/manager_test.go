package dialogue

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"arame/models"
	"arame/services/ai"
	"arame/services/recommendation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	contexts map[string]models.ConversationContext
	failSave bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{contexts: make(map[string]models.ConversationContext)}
}

func (s *memoryStore) Load(_ context.Context, guestID, sessionID string) (models.ConversationContext, error) {
	return s.contexts[guestID+":"+sessionID], nil
}

func (s *memoryStore) Save(_ context.Context, guestID, sessionID string, convCtx models.ConversationContext) error {
	if s.failSave {
		return fmt.Errorf("store down")
	}
	s.contexts[guestID+":"+sessionID] = convCtx
	return nil
}

func (s *memoryStore) Clear(_ context.Context, guestID, sessionID string) error {
	delete(s.contexts, guestID+":"+sessionID)
	return nil
}

type fakeGuests struct {
	guest models.Guest
}

func (f *fakeGuests) Create(_ context.Context, _ models.Guest) (string, error) { return "", nil }
func (f *fakeGuests) Update(_ context.Context, _ models.Guest) error           { return nil }
func (f *fakeGuests) GetByID(_ context.Context, id string) (*models.Guest, error) {
	if id != f.guest.ID {
		return nil, fmt.Errorf("guest not found")
	}
	g := f.guest
	return &g, nil
}
func (f *fakeGuests) GetActiveByRoom(_ context.Context, _ string) (*models.Guest, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeGuests) UpdatePreferences(_ context.Context, _ string, _ models.GuestPreferences) error {
	return nil
}

type fakeConversations struct {
	turns []models.ChatMessage
}

func (f *fakeConversations) GetOrCreate(_ context.Context, guestID, sessionID string) (*models.Conversation, error) {
	return &models.Conversation{GuestID: guestID, SessionID: sessionID, History: f.turns}, nil
}
func (f *fakeConversations) AppendTurns(_ context.Context, _, _ string, turns []models.ChatMessage) error {
	f.turns = append(f.turns, turns...)
	return nil
}
func (f *fakeConversations) GetHistory(_ context.Context, _, _ string, _ int) ([]models.ChatMessage, error) {
	return f.turns, nil
}

type fakeFAQ struct{}

func (fakeFAQ) Answer(question string) (string, bool) {
	if strings.Contains(strings.ToLower(question), "wifi") {
		return "La red es Arame_Guest.", true
	}
	return "fallback", false
}

type fakeRoomService struct {
	placed *models.RoomServiceOrder
}

func (f *fakeRoomService) GetMenu() []models.MenuItem { return nil }
func (f *fakeRoomService) FormatMenu() string         { return "**Menú de Servicio a la Habitación**" }
func (f *fakeRoomService) PlaceOrder(_ context.Context, guest models.Guest, items []string, instructions string) (*models.RoomServiceOrder, error) {
	order := &models.RoomServiceOrder{
		ID:                  uuid.New().String(),
		GuestID:             guest.ID,
		RoomNumber:          guest.RoomNumber,
		SpecialInstructions: instructions,
		Status:              models.OrderStatusPending,
	}
	for _, item := range items {
		order.Items = append(order.Items, models.OrderItem{Name: item, Price: 10000, Quantity: 1})
		order.TotalPrice += 10000
	}
	f.placed = order
	return order, nil
}
func (f *fakeRoomService) GetOrderStatus(_ context.Context, _ string) (*models.RoomServiceOrder, error) {
	return f.placed, nil
}
func (f *fakeRoomService) GetGuestOrders(_ context.Context, _ string) ([]models.RoomServiceOrder, error) {
	return nil, nil
}
func (f *fakeRoomService) UpdateOrderStatus(_ context.Context, _, _ string) error { return nil }

type fakeTransport struct {
	scheduled []models.TransportationSlots
}

func (f *fakeTransport) Schedule(_ context.Context, guest models.Guest, slots models.TransportationSlots) (*models.TransportationRequest, error) {
	f.scheduled = append(f.scheduled, slots)
	return &models.TransportationRequest{
		ID:            "req-1",
		GuestID:       guest.ID,
		Destination:   slots.Destination,
		VehicleType:   slots.VehicleType,
		NumPassengers: 1,
		PickupTime:    time.Now().Add(time.Hour),
		Status:        models.TransportStatusPending,
	}, nil
}
func (f *fakeTransport) GetStatus(_ context.Context, _ string) (*models.TransportationRequest, error) {
	return nil, fmt.Errorf("not implemented")
}
func (f *fakeTransport) GetUpcoming(_ context.Context, _ string) ([]models.TransportationRequest, error) {
	return nil, nil
}
func (f *fakeTransport) UpdateStatus(_ context.Context, _, _ string) error { return nil }

type fakeRecommender struct{}

func (fakeRecommender) Recommend(_ context.Context, _ recommendation.Request) ([]models.Recommendation, error) {
	return []models.Recommendation{
		{Name: "El Cielo", Category: "restaurant", Description: "Alta cocina"},
		{Name: "Pergamino Café", Category: "cafe", Description: "Café de especialidad"},
	}, nil
}
func (fakeRecommender) GetCategories() map[string]string { return nil }
func (fakeRecommender) Describe(_ context.Context, rec models.Recommendation) string {
	return "Detalles de " + rec.Name
}
func (fakeRecommender) Lookup(_ context.Context, name string) (*models.Recommendation, error) {
	return nil, fmt.Errorf("no place named %s", name)
}
func (fakeRecommender) Photos(_ context.Context, rec models.Recommendation) ([]models.PlacePhoto, error) {
	return []models.PlacePhoto{{URL: "https://places.example/fotos/1.jpg", IsFeatured: true}}, nil
}

type fakeWeather struct{}

func (fakeWeather) Get(_ context.Context) models.Weather {
	return models.Weather{Condition: "Soleado", Temperature: 24, FeelsLike: 25, Humidity: 60}
}

type fakeResponder struct {
	reply string
	err   error
	calls int
}

func (f *fakeResponder) Complete(_ context.Context, _ ai.PromptInput) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fixture struct {
	manager   *Manager
	store     *memoryStore
	transport *fakeTransport
	room      *fakeRoomService
	responder *fakeResponder
	guest     models.Guest
}

func newFixture(guest models.Guest) *fixture {
	store := newMemoryStore()
	transport := &fakeTransport{}
	room := &fakeRoomService{}
	responder := &fakeResponder{reply: "respuesta generada"}
	manager := NewManager(ManagerDeps{
		Store:         store,
		Guests:        &fakeGuests{guest: guest},
		Conversations: &fakeConversations{},
		FAQs:          fakeFAQ{},
		RoomService:   room,
		Transport:     transport,
		Recommender:   fakeRecommender{},
		Weather:       fakeWeather{},
		Responder:     responder,
	})
	return &fixture{
		manager:   manager,
		store:     store,
		transport: transport,
		room:      room,
		responder: responder,
		guest:     guest,
	}
}

func testGuest() models.Guest {
	return models.Guest{ID: "g-1", Name: "Carolina Restrepo", RoomNumber: "804", IsActive: true}
}

func (f *fixture) send(t *testing.T, message string) string {
	t.Helper()
	reply, err := f.manager.Process(context.Background(), f.guest.ID, "s-1", message)
	require.NoError(t, err)
	return reply
}

func (f *fixture) storedContext() models.ConversationContext {
	return f.store.contexts[f.guest.ID+":s-1"]
}

func TestProcessRejectsUnknownGuest(t *testing.T) {
	f := newFixture(testGuest())
	_, err := f.manager.Process(context.Background(), "nobody", "s-1", "hola")
	assert.Error(t, err)
}

func TestGreetingUsesGuestName(t *testing.T) {
	f := newFixture(testGuest())
	reply := f.send(t, "Hola, buenos días")
	assert.Contains(t, reply, "Carolina")
	assert.Contains(t, reply, "Lina")
}

func TestTransportationSlotFillConvergesInThreeTurns(t *testing.T) {
	guest := testGuest()
	guest.Preferences.Transport = "taxi"
	f := newFixture(guest)

	first := f.send(t, "necesito que me lleven")
	assert.Contains(t, first, "dónde")
	assert.Equal(t, "destination", f.storedContext().Awaiting)

	second := f.send(t, "al aeropuerto")
	assert.Contains(t, second, "hora")
	assert.Equal(t, "pickup_time", f.storedContext().Awaiting)

	third := f.send(t, "a las 9:30 pm")
	assert.Contains(t, third, "req-1")

	require.Len(t, f.transport.scheduled, 1)
	slots := f.transport.scheduled[0]
	assert.Equal(t, "aeropuerto", slots.Destination)
	assert.Equal(t, "taxi", slots.VehicleType)
	assert.Equal(t, "21:30", slots.PickupTime)

	final := f.storedContext()
	assert.Empty(t, final.Awaiting)
	assert.Empty(t, final.Transportation.Destination, "slots reset after booking")
	assert.Equal(t, "aeropuerto", final.LastMentionedDestination)
}

func TestTransportationAsksForVehicleWithoutPreference(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "llévame al centro")
	assert.Equal(t, "vehicle_type", f.storedContext().Awaiting)

	reply := f.send(t, "un carro privado está bien")
	assert.Contains(t, reply, "hora")

	f.send(t, "en 20 minutos")
	require.Len(t, f.transport.scheduled, 1)
	assert.Equal(t, "private_car", f.transport.scheduled[0].VehicleType)
	assert.Equal(t, "en 20 minutos", f.transport.scheduled[0].PickupTime)
}

func TestTransportationOneShotBooking(t *testing.T) {
	f := newFixture(testGuest())

	reply := f.send(t, "necesito un taxi al aeropuerto a las 9:30 pm")
	assert.Contains(t, reply, "req-1")
	require.Len(t, f.transport.scheduled, 1)
	assert.Equal(t, "aeropuerto", f.transport.scheduled[0].Destination)
	assert.Equal(t, "21:30", f.transport.scheduled[0].PickupTime)
}

func TestBookingClosesTheTransportationTopic(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "necesito un taxi al aeropuerto a las 9:30 pm")
	require.Len(t, f.transport.scheduled, 1)

	stored := f.storedContext()
	assert.Empty(t, stored.CurrentIntent, "topic cleared after booking")
	assert.Equal(t, models.IntentTransportation, stored.PreviousIntent)

	// A contentless follow-up must not reopen the booking flow against
	// the remembered destination.
	reply := f.send(t, "mmm")
	assert.Equal(t, "respuesta generada", reply)
	assert.Len(t, f.transport.scheduled, 1, "no second booking")
	assert.Empty(t, f.storedContext().Awaiting)
}

func TestRecommendationTurnsAccumulateInterests(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "recomiéndame museos")
	f.send(t, "recomiéndame restaurantes")
	f.send(t, "recomiéndame restaurantes")

	stored := f.storedContext()
	assert.Equal(t, []string{"museum", "restaurant"}, stored.Recommendation.Interests)
}

func TestRoomServiceOrderConfirmation(t *testing.T) {
	f := newFixture(testGuest())

	reply := f.send(t, "quiero pedir una hamburguesa sin cebolla")
	assert.Contains(t, reply, "804", "confirmation names the room")
	assert.Contains(t, reply, f.room.placed.ID, "confirmation names the order")
	assert.Contains(t, reply, "sin cebolla")
}

func TestRoomServiceWithoutItemsShowsMenu(t *testing.T) {
	f := newFixture(testGuest())
	reply := f.send(t, "¿me muestras el menú de room service?")
	assert.Contains(t, reply, "Menú")
	assert.Nil(t, f.room.placed)
}

func TestRecommendationFlowAndOrdinalFollowUp(t *testing.T) {
	f := newFixture(testGuest())

	first := f.send(t, "recomiéndame restaurantes")
	assert.Contains(t, first, "1. **El Cielo**")

	stored := f.storedContext()
	assert.Equal(t, []string{"El Cielo", "Pergamino Café"}, stored.Recommendation.LastRecommendedPlaces)

	second := f.send(t, "cuéntame más del segundo")
	assert.Contains(t, second, "Pergamino Café")
}

func TestPhotoFollowUpSharesLinks(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "recomiéndame restaurantes")
	reply := f.send(t, "fotos del segundo")
	assert.Contains(t, reply, "Pergamino Café")
	assert.Contains(t, reply, "https://places.example/fotos/1.jpg")
	assert.Equal(t, 0, f.responder.calls, "photo follow-ups never go generative")
}

func TestNamedPlaceFollowUp(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "recomiéndame restaurantes")
	reply := f.send(t, "háblame de El Cielo")
	assert.Equal(t, "Detalles de El Cielo", reply)
}

func TestFAQRouting(t *testing.T) {
	f := newFixture(testGuest())
	reply := f.send(t, "¿cuál es la clave del wifi?")
	assert.Contains(t, reply, "Arame_Guest")
}

func TestWeatherRouting(t *testing.T) {
	f := newFixture(testGuest())
	reply := f.send(t, "¿cómo está el clima hoy?")
	assert.Contains(t, reply, "Soleado")
}

func TestLowConfidenceGoesGenerative(t *testing.T) {
	f := newFixture(testGuest())
	reply := f.send(t, "mmm")
	assert.Equal(t, "respuesta generada", reply)
	assert.Equal(t, 1, f.responder.calls)
}

func TestFailSafeApologyPreservesContext(t *testing.T) {
	f := newFixture(testGuest())

	f.send(t, "recomiéndame restaurantes")
	before := f.storedContext()

	f.responder.err = fmt.Errorf("model down")
	reply := f.send(t, "mmm")
	assert.Contains(t, reply, "Disculpe")

	after := f.storedContext()
	assert.Equal(t, before.CurrentIntent, after.CurrentIntent)
	assert.Equal(t, before.Recommendation.LastRecommendedPlaces, after.Recommendation.LastRecommendedPlaces)
	assert.Equal(t, len(before.IntentHistory), len(after.IntentHistory), "failed turn leaves no trace")
}

func TestIntentHistoryIsCapped(t *testing.T) {
	f := newFixture(testGuest())

	for i := 0; i < 25; i++ {
		f.send(t, "hola")
	}
	stored := f.storedContext()
	assert.LessOrEqual(t, len(stored.IntentHistory), 20)
}
