package dialogue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arame/config"
	"arame/models"

	"github.com/go-redis/redis/v8"
)

// ContextStore persists the per-conversation dialogue state between turns.
type ContextStore interface {
	Load(ctx context.Context, guestID, sessionID string) (models.ConversationContext, error)
	Save(ctx context.Context, guestID, sessionID string, convCtx models.ConversationContext) error
	Clear(ctx context.Context, guestID, sessionID string) error
}

// RedisContextStore keeps contexts in Redis with a sliding TTL, so idle
// conversations expire on their own.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisContextStore(client *redis.Client) *RedisContextStore {
	ttlMins := config.AppConfig.ContextTTLMins
	if ttlMins <= 0 {
		ttlMins = 720
	}
	return &RedisContextStore{
		client: client,
		ttl:    time.Duration(ttlMins) * time.Minute,
	}
}

func contextKey(guestID, sessionID string) string {
	return fmt.Sprintf("concierge:ctx:%s:%s", guestID, sessionID)
}

// Load returns the stored context, or a fresh zero context for a new
// conversation. Corrupt entries are dropped, not surfaced.
func (s *RedisContextStore) Load(ctx context.Context, guestID, sessionID string) (models.ConversationContext, error) {
	var convCtx models.ConversationContext

	data, err := s.client.Get(ctx, contextKey(guestID, sessionID)).Bytes()
	if err == redis.Nil {
		return convCtx, nil
	}
	if err != nil {
		return convCtx, fmt.Errorf("failed to load conversation context: %w", err)
	}
	if err := json.Unmarshal(data, &convCtx); err != nil {
		_ = s.Clear(ctx, guestID, sessionID)
		return models.ConversationContext{}, nil
	}
	return convCtx, nil
}

func (s *RedisContextStore) Save(ctx context.Context, guestID, sessionID string, convCtx models.ConversationContext) error {
	convCtx.LastUpdated = time.Now()
	data, err := json.Marshal(convCtx)
	if err != nil {
		return fmt.Errorf("failed to encode conversation context: %w", err)
	}
	if err := s.client.Set(ctx, contextKey(guestID, sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store conversation context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) Clear(ctx context.Context, guestID, sessionID string) error {
	if err := s.client.Del(ctx, contextKey(guestID, sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation context: %w", err)
	}
	return nil
}
