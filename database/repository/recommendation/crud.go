package recommendationRepo

import (
	"context"
	"errors"
	"fmt"

	"arame/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoRecommendationRepo) GetAll(ctx context.Context) ([]models.Recommendation, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoRecommendationRepo) GetByCategory(ctx context.Context, category string) ([]models.Recommendation, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *mongoRecommendationRepo) find(ctx context.Context, filter bson.M) ([]models.Recommendation, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []models.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}
	return recs, nil
}

func (r *mongoRecommendationRepo) GetByName(ctx context.Context, name string) (*models.Recommendation, error) {
	var rec models.Recommendation
	filter := bson.M{"name": bson.M{"$regex": "^" + name + "$", "$options": "i"}}
	err := r.coll.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("recommendation not found")
		}
		return nil, fmt.Errorf("failed to fetch recommendation: %w", err)
	}
	return &rec, nil
}

func (r *mongoRecommendationRepo) InsertMany(ctx context.Context, recs []models.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(recs))
	for _, rec := range recs {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		docs = append(docs, rec)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert recommendations: %w", err)
	}
	return nil
}

func (r *mongoRecommendationRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}
	return n, nil
}
