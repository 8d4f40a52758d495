package main

import (
	"context"
	"log"
	"time"

	"arame/config"
	"arame/database"
	guestRepo "arame/database/repository/guest"
	recommendationRepo "arame/database/repository/recommendation"
	"arame/models"
	"arame/utils"
)

// Seeds the recommendations catalog and a demo guest so the concierge
// has something to talk about on a fresh database.
func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	catalog := recommendationRepo.NewMongoRecommendationRepo()
	count, err := catalog.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to inspect catalog: %v", err)
	}
	if count == 0 {
		if err := catalog.InsertMany(ctx, curatedPlaces()); err != nil {
			log.Fatalf("Failed to seed recommendations: %v", err)
		}
		log.Printf("Seeded %d curated places", len(curatedPlaces()))
	} else {
		log.Printf("Catalog already has %d places, skipping seed", count)
	}

	guests := guestRepo.NewMongoGuestRepo()
	id, err := guests.Create(ctx, models.Guest{
		Name:       "Carolina Restrepo",
		RoomNumber: "804",
		Email:      "carolina.restrepo@example.com",
		Language:   "es",
		Preferences: models.GuestPreferences{
			TripType:  "leisure",
			Interests: []string{"gastronomía", "arte", "café"},
			Transport: "taxi",
		},
	})
	if err != nil {
		log.Fatalf("Failed to seed demo guest: %v", err)
	}
	log.Printf("Seeded demo guest %s in room 804", id)
}

func curatedPlaces() []models.Recommendation {
	return []models.Recommendation{
		{
			Name:        "El Cielo",
			Category:    "restaurant",
			Description: "Alta cocina colombiana de autor, experiencia de degustación",
			Address:     "Carrera 40 #10A-22, El Poblado",
			Latitude:    6.2094, Longitude: -75.5715,
			PriceLevel: 4,
			BestFor:    "evening",
			Tags:       []string{"indoor", "reservation", "gastronomía"},
		},
		{
			Name:        "Hacienda Junín",
			Category:    "restaurant",
			Description: "Comida típica antioqueña en el centro, bandeja paisa de referencia",
			Address:     "Carrera 49 #52-98, La Candelaria",
			Latitude:    6.2497, Longitude: -75.5671,
			PriceLevel: 2,
			BestFor:    "afternoon",
			Tags:       []string{"indoor", "típico"},
		},
		{
			Name:        "Pergamino Café",
			Category:    "cafe",
			Description: "Café de especialidad de fincas antioqueñas, brunch recomendado",
			Address:     "Carrera 37 #8A-37, El Poblado",
			Latitude:    6.2099, Longitude: -75.5670,
			PriceLevel: 2,
			BestFor:    "morning, afternoon",
			Tags:       []string{"indoor", "café"},
		},
		{
			Name:        "Museo de Antioquia",
			Category:    "museum",
			Description: "La mayor colección de Botero junto a la Plaza de las esculturas",
			Address:     "Calle 52 #52-43, La Candelaria",
			Latitude:    6.2526, Longitude: -75.5686,
			PriceLevel: 1,
			BestFor:    "morning",
			Tags:       []string{"indoor", "arte"},
		},
		{
			Name:        "Jardín Botánico",
			Category:    "nature",
			Description: "Catorce hectáreas de naturaleza con el Orquideorama en el corazón de la ciudad",
			Address:     "Calle 73 #51D-14",
			Latitude:    6.2705, Longitude: -75.5658,
			PriceLevel: 0,
			BestFor:    "morning, afternoon",
			Tags:       []string{"outdoor", "naturaleza"},
		},
		{
			Name:        "Parque Arví",
			Category:    "nature",
			Description: "Reserva natural con senderos, se llega en Metrocable desde Santo Domingo",
			Address:     "Corregimiento de Santa Elena",
			Latitude:    6.2810, Longitude: -75.5030,
			PriceLevel: 1,
			BestFor:    "morning",
			Tags:       []string{"outdoor", "senderismo"},
		},
		{
			Name:        "Comuna 13 Graffitour",
			Category:    "attraction",
			Description: "Recorrido de arte urbano y escaleras eléctricas, historia viva de la ciudad",
			Address:     "Comuna 13, San Javier",
			Latitude:    6.2518, Longitude: -75.6057,
			PriceLevel: 1,
			BestFor:    "morning, afternoon",
			Tags:       []string{"outdoor", "arte"},
		},
		{
			Name:        "Envy Rooftop",
			Category:    "bar",
			Description: "Cócteles con la mejor vista nocturna de El Poblado",
			Address:     "Calle 9 #43A-87, El Poblado",
			Latitude:    6.2086, Longitude: -75.5669,
			PriceLevel: 3,
			BestFor:    "evening",
			Tags:       []string{"outdoor", "cócteles", "reservation"},
		},
		{
			Name:        "Centro Comercial El Tesoro",
			Category:    "shopping",
			Description: "Centro comercial al aire libre con vista a la ciudad y zona de restaurantes",
			Address:     "Carrera 25A #1A Sur-45",
			Latitude:    6.1977, Longitude: -75.5585,
			PriceLevel: 3,
			BestFor:    "afternoon, evening",
			Tags:       []string{"indoor", "compras"},
		},
	}
}
