package recommendationRepo

import (
	"context"

	"arame/database"
	"arame/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecommendationRepository provides access to the curated places catalog.
type RecommendationRepository interface {
	GetAll(ctx context.Context) ([]models.Recommendation, error)
	GetByCategory(ctx context.Context, category string) ([]models.Recommendation, error)
	GetByName(ctx context.Context, name string) (*models.Recommendation, error)
	InsertMany(ctx context.Context, recs []models.Recommendation) error
	Count(ctx context.Context) (int64, error)
}

type mongoRecommendationRepo struct {
	coll *mongo.Collection
}

// NewMongoRecommendationRepo returns a RecommendationRepository backed by MongoDB.
func NewMongoRecommendationRepo() RecommendationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoRecommendationRepo{
		coll: db.Collection("recommendations"),
	}
}
