package transportRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arame/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTransportRepo) Create(ctx context.Context, req models.TransportationRequest) (string, error) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.RequestDate.IsZero() {
		req.RequestDate = time.Now()
	}
	if req.Status == "" {
		req.Status = models.TransportStatusPending
	}
	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return "", fmt.Errorf("failed to create transportation request: %w", err)
	}
	return req.ID, nil
}

func (r *mongoTransportRepo) GetByID(ctx context.Context, id string) (*models.TransportationRequest, error) {
	var req models.TransportationRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("transportation request not found")
		}
		return nil, fmt.Errorf("failed to fetch transportation request: %w", err)
	}
	return &req, nil
}

func (r *mongoTransportRepo) GetUpcomingByGuest(ctx context.Context, guestID string, after time.Time) ([]models.TransportationRequest, error) {
	filter := bson.M{
		"guestId":    guestID,
		"pickupTime": bson.M{"$gte": after},
		"status":     bson.M{"$in": []string{models.TransportStatusPending, models.TransportStatusConfirmed}},
	}
	opts := options.Find().SetSort(bson.M{"pickupTime": 1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.TransportationRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode requests: %w", err)
	}
	return requests, nil
}

func (r *mongoTransportRepo) UpdateStatus(ctx context.Context, id, status string) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("transportation request not found")
	}
	return nil
}
