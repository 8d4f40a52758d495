package conversationRepo

import (
	"context"

	"arame/database"
	"arame/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationRepository persists chat transcripts per guest session.
type ConversationRepository interface {
	GetOrCreate(ctx context.Context, guestID, sessionID string) (*models.Conversation, error)
	AppendTurns(ctx context.Context, guestID, sessionID string, turns []models.ChatMessage) error
	GetHistory(ctx context.Context, guestID, sessionID string, limit int) ([]models.ChatMessage, error)
}

type mongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoConversationRepo{
		coll: db.Collection("conversations"),
	}
}
