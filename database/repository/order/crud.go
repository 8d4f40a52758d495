package orderRepo

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

func (r *mongoOrderRepo) Create(ctx context.Context, order models.RoomServiceOrder) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}
	return order.ID, nil
}

func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.RoomServiceOrder, error) {
	var order models.RoomServiceOrder
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("order not found")
		}
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return &order, nil
}

func (r *mongoOrderRepo) GetByGuest(ctx context.Context, guestID string) ([]models.RoomServiceOrder, error) {
	opts := options.Find().SetSort(bson.M{"orderDate": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"guestId": guestID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []models.RoomServiceOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

func (r *mongoOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("order not found")
	}
	return nil
}
