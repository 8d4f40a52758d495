package guestRepo

import (
	"context"

	"arame/database"
	"arame/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// GuestRepository provides access to checked-in guest records.
type GuestRepository interface {
	Create(ctx context.Context, guest models.Guest) (string, error)
	Update(ctx context.Context, guest models.Guest) error
	GetByID(ctx context.Context, id string) (*models.Guest, error)
	GetActiveByRoom(ctx context.Context, roomNumber string) (*models.Guest, error)
	UpdatePreferences(ctx context.Context, id string, prefs models.GuestPreferences) error
}

type mongoGuestRepo struct {
	coll *mongo.Collection
}

// NewMongoGuestRepo returns a GuestRepository backed by MongoDB.
func NewMongoGuestRepo() GuestRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoGuestRepo{
		coll: db.Collection("guests"),
	}
}
