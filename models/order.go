package models

import "time"

// Valid room-service order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in-progress"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// MenuItem is one entry of the room-service menu catalog.
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// OrderItem is a line of a placed order. Unrecognized items carry a zero
// price rather than failing the order.
type OrderItem struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// RoomServiceOrder is a persisted room-service order.
type RoomServiceOrder struct {
	ID                  string      `bson:"id" json:"id"`
	GuestID             string      `bson:"guestId" json:"guest_id"`
	RoomNumber          string      `bson:"roomNumber" json:"room_number"`
	Items               []OrderItem `bson:"items" json:"items"`
	SpecialInstructions string      `bson:"specialInstructions,omitempty" json:"special_instructions,omitempty"`
	OrderDate           time.Time   `bson:"orderDate" json:"order_date"`
	Status              string      `bson:"status" json:"status"`
	TotalPrice          float64     `bson:"totalPrice" json:"total_price"`
}
