package recommendation

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"arame/config"
	recommendationRepo "arame/database/repository/recommendation"
	"arame/models"
	"arame/services/places"
	"arame/utils"

	"go.uber.org/zap"
)

// maxSuggestions is how many places one chat reply carries. More than
// three and guests stop reading.
const maxSuggestions = 3

// RecommendationService ranks the curated catalog for a guest request.
type RecommendationService interface {
	Recommend(ctx context.Context, req Request) ([]models.Recommendation, error)
	GetCategories() map[string]string
	Describe(ctx context.Context, rec models.Recommendation) string
	Lookup(ctx context.Context, name string) (*models.Recommendation, error)
	Photos(ctx context.Context, rec models.Recommendation) ([]models.PlacePhoto, error)
}

// Request captures everything that influences the ranking for a turn.
type Request struct {
	Category   string
	TimePeriod string
	Interests  []string
	Weather    models.Weather
}

type DefaultRecommendationService struct {
	catalog recommendationRepo.RecommendationRepository
	places  *places.Client
}

func NewRecommendationService(catalog recommendationRepo.RecommendationRepository, placesClient *places.Client) *DefaultRecommendationService {
	return &DefaultRecommendationService{catalog: catalog, places: placesClient}
}

func (s *DefaultRecommendationService) GetCategories() map[string]string {
	return config.RecommendationCategories
}

// Recommend scores the catalog and returns the top suggestions with
// distance and a contextual tip attached.
func (s *DefaultRecommendationService) Recommend(ctx context.Context, req Request) ([]models.Recommendation, error) {
	var (
		recs []models.Recommendation
		err  error
	)
	if req.Category != "" {
		recs, err = s.catalog.GetByCategory(ctx, req.Category)
	} else {
		recs, err = s.catalog.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if len(recs) == 0 && req.Category != "" {
		// An empty category falls back to the whole catalog rather
		// than an empty answer.
		recs, err = s.catalog.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	for i := range recs {
		recs[i].Relevance = Score(recs[i], req)
		km := places.DistanceKm(
			config.HotelCoordinates.Latitude, config.HotelCoordinates.Longitude,
			recs[i].Latitude, recs[i].Longitude)
		recs[i].Distance = places.FormatDistance(km)
		recs[i].Tip = tip(recs[i], req)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Relevance > recs[j].Relevance
	})

	if len(recs) > maxSuggestions {
		recs = recs[:maxSuggestions]
	}
	utils.GetLogger().Debug("Recommendations ranked",
		zap.String("category", req.Category), zap.Int("returned", len(recs)))
	return recs, nil
}

// Score ranks one place for the request. Category fit dominates, then
// guest interests, then time-of-day and weather suitability.
func Score(rec models.Recommendation, req Request) float64 {
	score := 1.0

	if req.Category != "" && rec.Category == req.Category {
		score += 3.0
	}

	for _, interest := range req.Interests {
		needle := strings.ToLower(interest)
		if strings.Contains(strings.ToLower(rec.Description), needle) || rec.HasTag(needle) {
			score += 1.5
		}
	}

	bestFor := strings.ToLower(rec.BestFor)
	if req.TimePeriod != "" && strings.Contains(bestFor, req.TimePeriod) {
		score += 1.0
	}

	if isRainy(req.Weather) {
		if rec.HasTag("indoor") {
			score += 1.0
		}
		if rec.HasTag("outdoor") {
			score -= 1.5
		}
	}

	return score
}

func isRainy(w models.Weather) bool {
	cond := strings.ToLower(w.Condition)
	return strings.Contains(cond, "lluvia") || strings.Contains(cond, "tormenta") || strings.Contains(cond, "rain")
}

func tip(rec models.Recommendation, req Request) string {
	switch {
	case isRainy(req.Weather) && rec.HasTag("outdoor"):
		return "Está lloviendo, considere llevar paraguas o visitar otro día."
	case req.TimePeriod == "evening" && rec.HasTag("reservation"):
		return "Le recomiendo reservar, en las noches se llena."
	case rec.PriceLevel >= 3:
		return "Es una opción de gama alta, ideal para una ocasión especial."
	default:
		return ""
	}
}

// FormatSuggestions renders ranked places as a numbered markdown list.
// The numbering and bold names are what later turns parse to resolve
// "el segundo" style follow-ups, so the shape here is load-bearing.
func FormatSuggestions(recs []models.Recommendation, category string) string {
	if len(recs) == 0 {
		return "Por el momento no tengo lugares para sugerirle en esa categoría, " +
			"pero con gusto le pregunto al equipo de recepción por opciones."
	}

	label := config.RecommendationCategories[category]
	if label == "" {
		label = "Lugares recomendados"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Estas son mis sugerencias de %s cerca del hotel:\n\n", strings.ToLower(label))
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. **%s**", i+1, rec.Name)
		if rec.Distance != "" {
			fmt.Fprintf(&b, " (a %s)", rec.Distance)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "   %s\n", rec.Description)
		if rec.Tip != "" {
			fmt.Fprintf(&b, "   _%s_\n", rec.Tip)
		}
	}
	b.WriteString("\n¿Le gustaría saber más de alguno? Puedo darle detalles o pedirle un transporte.")
	return b.String()
}

// Lookup finds one place by name, with the distance from the hotel
// filled in. Names missing from the curated catalog fall through to a
// live search around the hotel when the places provider is configured.
func (s *DefaultRecommendationService) Lookup(ctx context.Context, name string) (*models.Recommendation, error) {
	rec, err := s.catalog.GetByName(ctx, name)
	if err != nil {
		if found := s.searchNearby(ctx, name); found != nil {
			return found, nil
		}
		return nil, fmt.Errorf("place %q not in catalog: %w", name, err)
	}
	km := places.DistanceKm(
		config.HotelCoordinates.Latitude, config.HotelCoordinates.Longitude,
		rec.Latitude, rec.Longitude)
	rec.Distance = places.FormatDistance(km)
	return rec, nil
}

func (s *DefaultRecommendationService) searchNearby(ctx context.Context, name string) *models.Recommendation {
	if s.places == nil || !s.places.Enabled() {
		return nil
	}
	found, err := s.places.NearbySearch(ctx, "", name)
	if err != nil || len(found) == 0 {
		return nil
	}
	p := found[0]
	rec := &models.Recommendation{
		Name:       p.Name,
		Address:    p.Address,
		Latitude:   p.Latitude,
		Longitude:  p.Longitude,
		PlaceID:    p.PlaceID,
		PriceLevel: p.PriceLevel,
		Distance:   places.FormatDistance(p.DistanceKm),
	}
	if p.Rating > 0 {
		rec.Description = fmt.Sprintf("Un lugar cercano al hotel con calificación de %.1f estrellas.", p.Rating)
	}
	return rec
}

// Photos fetches browsable photo links for a place. A place without a
// stored provider id is resolved by name first.
func (s *DefaultRecommendationService) Photos(ctx context.Context, rec models.Recommendation) ([]models.PlacePhoto, error) {
	if s.places == nil || !s.places.Enabled() {
		return nil, fmt.Errorf("places provider not configured")
	}
	placeID := rec.PlaceID
	if placeID == "" {
		found, err := s.places.NearbySearch(ctx, "", rec.Name)
		if err != nil || len(found) == 0 {
			return nil, fmt.Errorf("no provider match for %q", rec.Name)
		}
		placeID = found[0].PlaceID
	}
	return s.places.Photos(ctx, placeID, 3)
}

// Describe expands one place for a follow-up question, pulling live
// details from the places provider when available.
func (s *DefaultRecommendationService) Describe(ctx context.Context, rec models.Recommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n%s\n", rec.Name, rec.Description)
	if rec.Address != "" {
		fmt.Fprintf(&b, "\nDirección: %s", rec.Address)
	}
	if rec.Distance != "" {
		fmt.Fprintf(&b, " (a %s del hotel)", rec.Distance)
	}
	if rec.Phone != "" {
		fmt.Fprintf(&b, "\nTeléfono: %s", rec.Phone)
	}

	if s.places != nil && s.places.Enabled() && rec.PlaceID != "" {
		if details, err := s.places.Details(ctx, rec.PlaceID); err == nil {
			if details.Rating > 0 {
				fmt.Fprintf(&b, "\nCalificación: %.1f estrellas", details.Rating)
			}
			if len(details.Hours) > 0 {
				fmt.Fprintf(&b, "\nHorario de hoy: %s", details.Hours[0])
			}
			if details.Website != "" {
				fmt.Fprintf(&b, "\nSitio web: %s", details.Website)
			}
		} else {
			utils.GetLogger().Warn("Place details unavailable",
				zap.String("place", rec.Name), zap.Error(err))
		}
	}

	b.WriteString("\n\n¿Quiere que le programe un transporte hasta allá?")
	return b.String()
}
