package places

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"arame/config"
	"arame/models"
)

const (
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	detailsURL      = "https://maps.googleapis.com/maps/api/place/details/json"
	photoURL        = "https://maps.googleapis.com/maps/api/place/photo"
)

// Client talks to the Google Places web API. All methods degrade
// gracefully when the API key is missing: the concierge then works off
// the curated catalog alone.
type Client struct {
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name             string   `json:"name"`
		Vicinity         string   `json:"vicinity"`
		PlaceID          string   `json:"place_id"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
		PriceLevel       int      `json:"price_level"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
			Width          int    `json:"width"`
			Height         int    `json:"height"`
		} `json:"photos"`
	} `json:"results"`
}

// NearbySearch finds places of the given type around the hotel.
func (c *Client) NearbySearch(ctx context.Context, placeType, keyword string) ([]models.Place, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("places api key not configured")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", config.HotelCoordinates.Latitude, config.HotelCoordinates.Longitude))
	params.Set("radius", strconv.Itoa(config.AppConfig.MapsSearchRadius))
	params.Set("key", c.apiKey)
	params.Set("language", "es")
	if placeType != "" {
		params.Set("type", placeType)
	}
	if keyword != "" {
		params.Set("keyword", keyword)
	}

	var body nearbyResponse
	if err := c.getJSON(ctx, nearbySearchURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" && body.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places API returned status %s", body.Status)
	}

	out := make([]models.Place, 0, len(body.Results))
	for _, r := range body.Results {
		p := models.Place{
			Name:             r.Name,
			Address:          r.Vicinity,
			Rating:           r.Rating,
			UserRatingsTotal: r.UserRatingsTotal,
			PlaceID:          r.PlaceID,
			Latitude:         r.Geometry.Location.Lat,
			Longitude:        r.Geometry.Location.Lng,
			Types:            r.Types,
			PriceLevel:       r.PriceLevel,
		}
		p.DistanceKm = DistanceKm(
			config.HotelCoordinates.Latitude, config.HotelCoordinates.Longitude,
			p.Latitude, p.Longitude)
		if len(r.Photos) > 0 {
			p.PhotoURL = c.photoLink(r.Photos[0].PhotoReference, 800)
		}
		out = append(out, p)
	}
	return out, nil
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name                 string  `json:"name"`
		FormattedAddress     string  `json:"formatted_address"`
		FormattedPhoneNumber string  `json:"formatted_phone_number"`
		Website              string  `json:"website"`
		URL                  string  `json:"url"`
		Rating               float64 `json:"rating"`
		PriceLevel           int     `json:"price_level"`
		OpeningHours         struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
		Reviews []struct {
			AuthorName              string  `json:"author_name"`
			Text                    string  `json:"text"`
			Rating                  float64 `json:"rating"`
			RelativeTimeDescription string  `json:"relative_time_description"`
		} `json:"reviews"`
	} `json:"result"`
}

// Details fetches the detail view for a place id.
func (c *Client) Details(ctx context.Context, placeID string) (*models.PlaceDetails, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("places api key not configured")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	params.Set("language", "es")
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,url,rating,price_level,opening_hours,reviews")

	var body detailsResponse
	if err := c.getJSON(ctx, detailsURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("place details returned status %s", body.Status)
	}

	d := &models.PlaceDetails{
		Name:       body.Result.Name,
		Address:    body.Result.FormattedAddress,
		Phone:      body.Result.FormattedPhoneNumber,
		Website:    body.Result.Website,
		MapsURL:    body.Result.URL,
		Rating:     body.Result.Rating,
		PriceLevel: body.Result.PriceLevel,
		Hours:      body.Result.OpeningHours.WeekdayText,
	}
	for _, r := range body.Result.Reviews {
		d.Reviews = append(d.Reviews, models.PlaceReview{
			Author: r.AuthorName,
			Text:   r.Text,
			Rating: r.Rating,
			Time:   r.RelativeTimeDescription,
		})
	}
	return d, nil
}

// Photos returns browsable photo links for a place, featured first.
func (c *Client) Photos(ctx context.Context, placeID string, limit int) ([]models.PlacePhoto, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("places api key not configured")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", c.apiKey)
	params.Set("fields", "photos")

	var body struct {
		Status string `json:"status"`
		Result struct {
			Photos []struct {
				PhotoReference string `json:"photo_reference"`
				Width          int    `json:"width"`
				Height         int    `json:"height"`
			} `json:"photos"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, detailsURL+"?"+params.Encode(), &body); err != nil {
		return nil, err
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("place photos returned status %s", body.Status)
	}

	var photos []models.PlacePhoto
	for i, p := range body.Result.Photos {
		if limit > 0 && i >= limit {
			break
		}
		photos = append(photos, models.PlacePhoto{
			URL:        c.photoLink(p.PhotoReference, 1200),
			Width:      p.Width,
			Height:     p.Height,
			IsFeatured: i == 0,
		})
	}
	return photos, nil
}

func (c *Client) photoLink(reference string, maxWidth int) string {
	params := url.Values{}
	params.Set("photo_reference", reference)
	params.Set("maxwidth", strconv.Itoa(maxWidth))
	params.Set("key", c.apiKey)
	return photoURL + "?" + params.Encode()
}

func (c *Client) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

const earthRadiusKm = 6371.0

// DistanceKm is the haversine great-circle distance between two
// coordinate pairs. Used instead of the Distance Matrix API: at
// neighborhood scale straight-line distance is close enough.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if lat2 == 0 && lon2 == 0 {
		return 0
	}
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// FormatDistance renders a distance for chat: meters under a
// kilometer, otherwise one decimal of kilometers.
func FormatDistance(km float64) string {
	if km <= 0 {
		return ""
	}
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*100))*10)
	}
	return fmt.Sprintf("%.1f km", km)
}
