package handlers

import (
	guestRepo "arame/database/repository/guest"
	"arame/services/dialogue"
	"arame/services/faq"
	"arame/services/recommendation"
	"arame/services/roomservice"
	"arame/services/transportation"
	"arame/services/weather"
)

// HandlerBundle wires every HTTP handler to the services it needs.
type HandlerBundle struct {
	Guests      guestRepo.GuestRepository
	Dialogue    *dialogue.Manager
	FAQs        faq.FAQService
	RoomService roomservice.RoomServiceService
	Transport   transportation.TransportationService
	Recommender recommendation.RecommendationService
	Weather     *weather.Cache
}

func NewHandlerBundle(
	guests guestRepo.GuestRepository,
	dialogueManager *dialogue.Manager,
	faqs faq.FAQService,
	roomService roomservice.RoomServiceService,
	transport transportation.TransportationService,
	recommender recommendation.RecommendationService,
	weatherCache *weather.Cache,
) *HandlerBundle {
	return &HandlerBundle{
		Guests:      guests,
		Dialogue:    dialogueManager,
		FAQs:        faqs,
		RoomService: roomService,
		Transport:   transport,
		Recommender: recommender,
		Weather:     weatherCache,
	}
}
