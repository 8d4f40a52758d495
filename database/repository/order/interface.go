package orderRepo

import (
	"context"

	"arame/database"
	"arame/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository provides access to room service orders.
type OrderRepository interface {
	Create(ctx context.Context, order models.RoomServiceOrder) (string, error)
	GetByID(ctx context.Context, id string) (*models.RoomServiceOrder, error)
	GetByGuest(ctx context.Context, guestID string) ([]models.RoomServiceOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns an OrderRepository backed by MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoOrderRepo{
		coll: db.Collection("room_service_orders"),
	}
}
