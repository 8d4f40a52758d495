package guestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"arame/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoGuestRepo) Create(ctx context.Context, guest models.Guest) (string, error) {
	if guest.ID == "" {
		guest.ID = uuid.New().String()
	}
	if guest.CheckInDate.IsZero() {
		guest.CheckInDate = time.Now()
	}
	guest.IsActive = true
	if _, err := r.coll.InsertOne(ctx, guest); err != nil {
		return "", fmt.Errorf("failed to create guest: %w", err)
	}
	return guest.ID, nil
}

func (r *mongoGuestRepo) Update(ctx context.Context, guest models.Guest) error {
	filter := bson.M{"id": guest.ID}
	update := bson.M{"$set": guest}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update guest: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("guest not found")
	}
	return nil
}

func (r *mongoGuestRepo) GetByID(ctx context.Context, id string) (*models.Guest, error) {
	var guest models.Guest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&guest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("guest not found")
		}
		return nil, fmt.Errorf("failed to fetch guest: %w", err)
	}
	return &guest, nil
}

func (r *mongoGuestRepo) GetActiveByRoom(ctx context.Context, roomNumber string) (*models.Guest, error) {
	var guest models.Guest
	filter := bson.M{"roomNumber": roomNumber, "isActive": true}
	err := r.coll.FindOne(ctx, filter).Decode(&guest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("no active guest in room")
		}
		return nil, fmt.Errorf("failed to fetch guest by room: %w", err)
	}
	return &guest, nil
}

func (r *mongoGuestRepo) UpdatePreferences(ctx context.Context, id string, prefs models.GuestPreferences) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"preferences": prefs}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update guest preferences: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("guest not found")
	}
	return nil
}
