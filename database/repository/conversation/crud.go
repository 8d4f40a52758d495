package conversationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arame/config"
	"arame/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoConversationRepo) GetOrCreate(ctx context.Context, guestID, sessionID string) (*models.Conversation, error) {
	filter := bson.M{"guestId": guestID, "sessionId": sessionID}

	var conv models.Conversation
	err := r.coll.FindOne(ctx, filter).Decode(&conv)
	if err == nil {
		return &conv, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	now := time.Now()
	conv = models.Conversation{
		ID:           uuid.New().String(),
		GuestID:      guestID,
		SessionID:    sessionID,
		History:      []models.ChatMessage{},
		StartTime:    now,
		LastActivity: now,
	}
	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}
	return &conv, nil
}

// AppendTurns pushes new messages onto the transcript, keeping only the
// most recent MaxConversationHistory entries.
func (r *mongoConversationRepo) AppendTurns(ctx context.Context, guestID, sessionID string, turns []models.ChatMessage) error {
	if len(turns) == 0 {
		return nil
	}
	capSize := config.AppConfig.MaxConversationHistory
	if capSize <= 0 {
		capSize = 20
	}
	filter := bson.M{"guestId": guestID, "sessionId": sessionID}
	update := bson.M{
		"$push": bson.M{
			"history": bson.M{
				"$each":  turns,
				"$slice": -capSize,
			},
		},
		"$set": bson.M{"lastActivity": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to append conversation turns: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("conversation not found")
	}
	return nil
}

func (r *mongoConversationRepo) GetHistory(ctx context.Context, guestID, sessionID string, limit int) ([]models.ChatMessage, error) {
	conv, err := r.GetOrCreate(ctx, guestID, sessionID)
	if err != nil {
		return nil, err
	}
	history := conv.History
	if limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history, nil
}
