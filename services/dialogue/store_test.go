package dialogue

import (
	"context"
	"testing"

	"arame/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisContextStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisContextStore(client), mr
}

func TestRedisContextStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	convCtx := models.ConversationContext{
		CurrentIntent:            models.IntentTransportation,
		Awaiting:                 "pickup_time",
		LastMentionedDestination: "aeropuerto",
		IntentHistory:            []models.Intent{models.IntentGreeting, models.IntentTransportation},
		Transportation: models.TransportationSlots{
			Destination: "aeropuerto",
			VehicleType: "taxi",
		},
	}
	require.NoError(t, store.Save(ctx, "g-1", "s-1", convCtx))

	loaded, err := store.Load(ctx, "g-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, models.IntentTransportation, loaded.CurrentIntent)
	assert.Equal(t, "pickup_time", loaded.Awaiting)
	assert.Equal(t, "aeropuerto", loaded.Transportation.Destination)
	assert.False(t, loaded.LastUpdated.IsZero())
}

func TestRedisContextStoreMissingKeyIsFreshContext(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.Load(context.Background(), "g-1", "never-seen")
	require.NoError(t, err)
	assert.Equal(t, models.ConversationContext{}, loaded)
}

func TestRedisContextStoreSetsTTL(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), "g-1", "s-1", models.ConversationContext{}))
	ttl := mr.TTL("concierge:ctx:g-1:s-1")
	assert.Greater(t, ttl.Minutes(), 0.0)
}

func TestRedisContextStoreDropsCorruptEntries(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("concierge:ctx:g-1:s-1", "not json"))
	loaded, err := store.Load(context.Background(), "g-1", "s-1")
	require.NoError(t, err)
	assert.Equal(t, models.ConversationContext{}, loaded)
	assert.False(t, mr.Exists("concierge:ctx:g-1:s-1"))
}

func TestRedisContextStoreClear(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "g-1", "s-1", models.ConversationContext{}))
	require.NoError(t, store.Clear(ctx, "g-1", "s-1"))
	assert.False(t, mr.Exists("concierge:ctx:g-1:s-1"))
}
