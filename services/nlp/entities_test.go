package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEntitiesDestination(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"gazetteer hit", "quiero ir al aeropuerto", "aeropuerto"},
		{"gazetteer alias", "llévame a la piedra del peñol", "guatapé"},
		{"gazetteer beats pattern capture", "necesito ir a parque lleras esta noche", "parque lleras"},
		{"pattern capture for unknown place", "quiero ir a casa de mi tía", "casa de mi tía"},
		{"capture under three runes is rejected", "voy a x", ""},
		{"no destination", "tengo hambre", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := ExtractEntities(tt.message)
			assert.Equal(t, tt.want, entities.Destination)
		})
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"recógeme a las 9:30 pm", "21:30"},
		{"a las 9:30 am por favor", "09:30"},
		{"mi vuelo sale a las 14:45", "14:45"},
		{"un taxi para las 7 de la noche", "19:00"},
		{"a las 5", "17:00"},
		{"a las 10", "10:00"},
		{"no hay hora aquí", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTime(tt.message))
		})
	}
}

func TestExtractEntitiesTimeFillsBothSlots(t *testing.T) {
	entities := ExtractEntities("recógeme a las 9:30 pm")
	assert.Equal(t, "21:30", entities.Time)
	assert.Equal(t, "21:30", entities.PickupTime)
}

func TestExtractEntitiesOrderItems(t *testing.T) {
	t.Run("items extracted when an ordering trigger is present", func(t *testing.T) {
		entities := ExtractEntities("quiero pedir una hamburguesa y una limonada")
		assert.ElementsMatch(t, []string{"hamburguesa", "limonada"}, entities.OrderItems)
	})

	t.Run("food words without a trigger are not orders", func(t *testing.T) {
		entities := ExtractEntities("la pizza de anoche estaba buena")
		assert.Empty(t, entities.OrderItems)
	})

	t.Run("special instructions", func(t *testing.T) {
		entities := ExtractEntities("quiero una hamburguesa sin cebolla con queso extra")
		assert.Contains(t, entities.SpecialInstructions, "sin cebolla")
	})
}

func TestExtractEntitiesTransportFields(t *testing.T) {
	entities := ExtractEntities("una camioneta al aeropuerto para 4 personas a las 6 de la mañana")
	assert.Equal(t, "suv", entities.VehicleType)
	assert.Equal(t, "aeropuerto", entities.Destination)
	assert.Equal(t, 4, entities.NumPassengers)
	assert.Equal(t, "06:00", entities.Time)
}

func TestExtractEntitiesCategoryAndPeriod(t *testing.T) {
	entities := ExtractEntities("recomiéndame bares para esta noche")
	assert.Equal(t, "bar", entities.Category)
	assert.Equal(t, "evening", entities.TimePeriod)
}

func TestEntitySetSlots(t *testing.T) {
	entities := ExtractEntities("un taxi al centro a las 3 pm")
	slots := entities.Slots()
	assert.Contains(t, slots, "destination")
	assert.Contains(t, slots, "pickup_time")
	assert.Contains(t, slots, "vehicle_type")
	assert.NotContains(t, slots, "text")
}
