package transportRepo

import (
	"context"
	"time"

	"arame/database"
	"arame/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransportRepository provides access to transportation requests.
type TransportRepository interface {
	Create(ctx context.Context, req models.TransportationRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.TransportationRequest, error)
	GetUpcomingByGuest(ctx context.Context, guestID string, after time.Time) ([]models.TransportationRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoTransportRepo struct {
	coll *mongo.Collection
}

// NewMongoTransportRepo returns a TransportRepository backed by MongoDB.
func NewMongoTransportRepo() TransportRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoTransportRepo{
		coll: db.Collection("transportation_requests"),
	}
}
