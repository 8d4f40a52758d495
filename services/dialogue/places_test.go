package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSuggestedPlaces(t *testing.T) {
	reply := "Estas son mis sugerencias:\n\n" +
		"1. **El Cielo** (a 350 m)\n   Alta cocina colombiana\n" +
		"2. **Pergamino Café**\n   Café de especialidad\n" +
		"3. **Museo de Antioquia**\n   Obras de Botero\n"

	names := ParseSuggestedPlaces(reply)
	assert.Equal(t, []string{"El Cielo", "Pergamino Café", "Museo de Antioquia"}, names)
}

func TestParseSuggestedPlacesIgnoresPlainText(t *testing.T) {
	assert.Nil(t, ParseSuggestedPlaces("La piscina abre a las 6:00 AM."))
	assert.Nil(t, ParseSuggestedPlaces("- **Taxi estándar**\n- **SUV**"))
}

func TestWantsPhotos(t *testing.T) {
	assert.True(t, WantsPhotos("fotos del segundo"))
	assert.True(t, WantsPhotos("¿tienes imágenes de Guatapé?"))
	assert.False(t, WantsPhotos("cuéntame más del segundo"))
}

func TestNamedPlace(t *testing.T) {
	candidates := []string{"Museo", "Museo de Antioquia"}

	name, ok := NamedPlace("más información del museo de antioquia", candidates)
	assert.True(t, ok)
	assert.Equal(t, "Museo de Antioquia", name, "longest candidate wins")

	_, ok = NamedPlace("algo sin lugar", candidates)
	assert.False(t, ok)
}

func TestPlaceQuery(t *testing.T) {
	query, ok := PlaceQuery("más información del Pueblito Paisa")
	assert.True(t, ok)
	assert.Equal(t, "Pueblito Paisa", query)

	query, ok = PlaceQuery("fotos de la Comuna 13")
	assert.True(t, ok)
	assert.Equal(t, "Comuna 13", query)

	_, ok = PlaceQuery("recomiéndame restaurantes")
	assert.False(t, ok)
}

func TestOrdinalReference(t *testing.T) {
	tests := []struct {
		message string
		want    int
		ok      bool
	}{
		{"cuéntame más del segundo", 1, true},
		{"el primero suena bien", 0, true},
		{"la tercera opción", 2, true},
		{"dime más del 2", 1, true},
		{"el 3 por favor", 2, true},
		{"quiero ir al aeropuerto", 0, false},
		{"gracias", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			got, ok := OrdinalReference(tt.message)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
