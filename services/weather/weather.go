package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"arame/config"
	"arame/models"
	"arame/utils"

	"go.uber.org/zap"
)

const openWeatherURL = "https://api.openweathermap.org/data/2.5/weather"

// defaultWeather is served when the upstream API is unreachable or not
// configured. Medellín's climate is stable enough for a sane stand-in.
var defaultWeather = models.Weather{
	Temperature: 23.0,
	FeelsLike:   24.0,
	Condition:   "Parcialmente nublado",
	Icon:        "02d",
	Humidity:    65,
	WindSpeed:   2.5,
}

// Fetcher retrieves current conditions for a coordinate pair.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (models.Weather, error)
}

// Cache memoizes weather lookups for a fixed TTL so chat turns do not
// hammer the upstream API.
type Cache struct {
	mu      sync.Mutex
	fetcher Fetcher
	clock   func() time.Time
	ttl     time.Duration
	current models.Weather
	fetched time.Time
}

func NewCache(fetcher Fetcher, ttl time.Duration, clock func() time.Time) *Cache {
	if clock == nil {
		clock = time.Now
	}
	return &Cache{fetcher: fetcher, ttl: ttl, clock: clock}
}

// Get returns cached conditions, refreshing when the entry is older
// than the TTL. A failed refresh degrades to defaults rather than
// blocking the conversation.
func (c *Cache) Get(ctx context.Context) models.Weather {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock()
	if !c.fetched.IsZero() && now.Sub(c.fetched) < c.ttl {
		return c.current
	}

	w, err := c.fetcher.Fetch(ctx, config.HotelCoordinates.Latitude, config.HotelCoordinates.Longitude)
	if err != nil {
		utils.GetLogger().Warn("Weather fetch failed, serving defaults", zap.Error(err))
		if c.fetched.IsZero() {
			c.current = defaultWeather
			c.current.UpdatedAt = now
		}
		// A stale entry is better than defaults; keep it.
		c.fetched = now
		return c.current
	}
	w.UpdatedAt = now
	c.current = w
	c.fetched = now
	return c.current
}

// Invalidate drops the cached entry so the next Get refetches.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetched = time.Time{}
}

// OpenWeatherFetcher calls the OpenWeather current conditions API.
type OpenWeatherFetcher struct {
	apiKey string
	client *http.Client
}

func NewOpenWeatherFetcher(apiKey string) *OpenWeatherFetcher {
	return &OpenWeatherFetcher{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (f *OpenWeatherFetcher) Fetch(ctx context.Context, lat, lon float64) (models.Weather, error) {
	if f.apiKey == "" {
		return models.Weather{}, fmt.Errorf("openweather api key not configured")
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.4f", lat))
	params.Set("lon", fmt.Sprintf("%.4f", lon))
	params.Set("appid", f.apiKey)
	params.Set("units", "metric")
	params.Set("lang", "es")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openWeatherURL+"?"+params.Encode(), nil)
	if err != nil {
		return models.Weather{}, fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return models.Weather{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Weather{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.Weather{}, fmt.Errorf("failed to decode weather response: %w", err)
	}

	w := models.Weather{
		Temperature: body.Main.Temp,
		FeelsLike:   body.Main.FeelsLike,
		Humidity:    body.Main.Humidity,
		WindSpeed:   body.Wind.Speed,
	}
	if len(body.Weather) > 0 {
		w.Condition = body.Weather[0].Description
		w.Icon = body.Weather[0].Icon
	}
	return w, nil
}

// Describe renders conditions as a chat reply.
func Describe(w models.Weather) string {
	msg := fmt.Sprintf("En este momento en Medellín: %s, %.0f°C (sensación de %.0f°C), humedad del %d%%.",
		w.Condition, w.Temperature, w.FeelsLike, w.Humidity)
	if w.Temperature >= 27 {
		msg += " Un día caluroso, le recomiendo hidratarse bien si va a salir."
	} else if w.Temperature <= 17 {
		msg += " Está fresco para Medellín, una chaqueta ligera no le sobra."
	} else {
		msg += " El clásico clima de la eterna primavera, perfecto para salir."
	}
	return msg
}
