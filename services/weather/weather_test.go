package weather

import (
	"context"
	"fmt"
	"testing"
	"time"

	"arame/models"

	"github.com/stretchr/testify/assert"
)

type fakeFetcher struct {
	calls int
	fail  bool
}

func (f *fakeFetcher) Fetch(_ context.Context, _, _ float64) (models.Weather, error) {
	f.calls++
	if f.fail {
		return models.Weather{}, fmt.Errorf("upstream down")
	}
	return models.Weather{Temperature: 25, Condition: "Soleado", Humidity: 50}, nil
}

func TestCacheServesWithinTTL(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	fetcher := &fakeFetcher{}
	cache := NewCache(fetcher, 30*time.Minute, clock)

	first := cache.Get(context.Background())
	assert.Equal(t, "Soleado", first.Condition)
	assert.Equal(t, now, first.UpdatedAt)

	// Nine minutes later: still cached, no second fetch.
	now = now.Add(9 * time.Minute)
	cache.Get(context.Background())
	assert.Equal(t, 1, fetcher.calls)

	// Past the TTL the cache refetches.
	now = now.Add(25 * time.Minute)
	cache.Get(context.Background())
	assert.Equal(t, 2, fetcher.calls)
}

func TestCacheDegradesToDefaults(t *testing.T) {
	cache := NewCache(&fakeFetcher{fail: true}, 30*time.Minute, nil)

	w := cache.Get(context.Background())
	assert.Equal(t, "Parcialmente nublado", w.Condition)
	assert.Equal(t, 23.0, w.Temperature)
}

func TestCacheKeepsStaleOnFailedRefresh(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	fetcher := &fakeFetcher{}
	cache := NewCache(fetcher, 30*time.Minute, clock)

	cache.Get(context.Background())
	fetcher.fail = true
	now = now.Add(time.Hour)

	w := cache.Get(context.Background())
	assert.Equal(t, "Soleado", w.Condition, "stale data beats defaults")
}

func TestCacheInvalidate(t *testing.T) {
	fetcher := &fakeFetcher{}
	cache := NewCache(fetcher, 30*time.Minute, nil)

	cache.Get(context.Background())
	cache.Invalidate()
	cache.Get(context.Background())
	assert.Equal(t, 2, fetcher.calls)
}

func TestDescribe(t *testing.T) {
	msg := Describe(models.Weather{Condition: "Soleado", Temperature: 29, FeelsLike: 31, Humidity: 40})
	assert.Contains(t, msg, "Soleado")
	assert.Contains(t, msg, "29°C")
	assert.Contains(t, msg, "caluroso")
}

func TestFractionalConditionsSurviveTheCache(t *testing.T) {
	cache := NewCache(&fractionalFetcher{}, 30*time.Minute, nil)

	w := cache.Get(context.Background())
	assert.Equal(t, 22.6, w.Temperature)
	assert.Equal(t, 3.4, w.WindSpeed)
	assert.Contains(t, Describe(w), "23°C")
}

type fractionalFetcher struct{}

func (fractionalFetcher) Fetch(_ context.Context, _, _ float64) (models.Weather, error) {
	return models.Weather{Temperature: 22.6, FeelsLike: 23.4, Condition: "Lluvia ligera", Humidity: 80, WindSpeed: 3.4}, nil
}
