package recommendation

import (
	"context"
	"testing"

	"arame/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	recs []models.Recommendation
}

func (f *fakeCatalog) GetAll(_ context.Context) ([]models.Recommendation, error) {
	return append([]models.Recommendation(nil), f.recs...), nil
}

func (f *fakeCatalog) GetByCategory(_ context.Context, category string) ([]models.Recommendation, error) {
	var out []models.Recommendation
	for _, r := range f.recs {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeCatalog) GetByName(_ context.Context, name string) (*models.Recommendation, error) {
	for i := range f.recs {
		if f.recs[i].Name == name {
			return &f.recs[i], nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeCatalog) InsertMany(_ context.Context, recs []models.Recommendation) error {
	f.recs = append(f.recs, recs...)
	return nil
}

func (f *fakeCatalog) Count(_ context.Context) (int64, error) {
	return int64(len(f.recs)), nil
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{recs: []models.Recommendation{
		{Name: "El Cielo", Category: "restaurant", Description: "Alta cocina colombiana", Latitude: 6.2095, Longitude: -75.5710, PriceLevel: 4, Tags: []string{"indoor", "reservation"}},
		{Name: "Parque Arví", Category: "nature", Description: "Reserva natural con senderos", Latitude: 6.2810, Longitude: -75.5030, BestFor: "morning, afternoon", Tags: []string{"outdoor"}},
		{Name: "Museo de Antioquia", Category: "museum", Description: "Obras de Botero y arte antioqueño", Latitude: 6.2526, Longitude: -75.5686, BestFor: "morning", Tags: []string{"indoor"}},
		{Name: "Pergamino Café", Category: "cafe", Description: "Café de especialidad", Latitude: 6.2099, Longitude: -75.5670, Tags: []string{"indoor"}},
	}}
}

func TestRecommendFiltersByCategory(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)

	recs, err := svc.Recommend(context.Background(), Request{Category: "restaurant"})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "El Cielo", recs[0].Name)
	assert.NotEmpty(t, recs[0].Distance)
}

func TestRecommendRanksInterestsFirst(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)

	recs, err := svc.Recommend(context.Background(), Request{Interests: []string{"arte"}})
	require.NoError(t, err)
	require.NotEmpty(t, recs)
	assert.Equal(t, "Museo de Antioquia", recs[0].Name)
}

func TestRecommendRainPenalizesOutdoor(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)

	rain := models.Weather{Condition: "Lluvia moderada"}
	recs, err := svc.Recommend(context.Background(), Request{Weather: rain})
	require.NoError(t, err)
	for _, rec := range recs {
		assert.NotEqual(t, "Parque Arví", rec.Name, "outdoor place should rank below indoor ones in rain")
	}
}

func TestRecommendEmptyCategoryFallsBack(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)

	recs, err := svc.Recommend(context.Background(), Request{Category: "spa"})
	require.NoError(t, err)
	assert.NotEmpty(t, recs, "unknown category should offer general suggestions")
}

func TestFormatSuggestionsIsParseable(t *testing.T) {
	recs := []models.Recommendation{
		{Name: "El Cielo", Description: "Alta cocina"},
		{Name: "Pergamino Café", Description: "Café de especialidad"},
	}
	out := FormatSuggestions(recs, "restaurant")
	assert.Contains(t, out, "1. **El Cielo**")
	assert.Contains(t, out, "2. **Pergamino Café**")
}

func TestLookupFillsDistance(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)

	rec, err := svc.Lookup(context.Background(), "Pergamino Café")
	require.NoError(t, err)
	assert.Equal(t, "cafe", rec.Category)
	assert.NotEmpty(t, rec.Distance)

	_, err = svc.Lookup(context.Background(), "no existe")
	assert.Error(t, err)
}

func TestPhotosRequireProvider(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), nil)
	_, err := svc.Photos(context.Background(), models.Recommendation{Name: "El Cielo"})
	assert.Error(t, err)
}

func TestScoreWeights(t *testing.T) {
	rec := models.Recommendation{Category: "restaurant", BestFor: "evening", Tags: []string{"indoor"}}

	base := Score(rec, Request{})
	withCategory := Score(rec, Request{Category: "restaurant"})
	withEvening := Score(rec, Request{TimePeriod: "evening"})

	assert.Greater(t, withCategory, base)
	assert.Greater(t, withEvening, base)
}
