package roomservice

import (
	"context"
	"fmt"
	"strings"

	orderRepo "arame/database/repository/order"
	"arame/models"
	"arame/utils"

	"go.uber.org/zap"
)

// RoomServiceService takes orders against the menu catalog.
type RoomServiceService interface {
	GetMenu() []models.MenuItem
	FormatMenu() string
	PlaceOrder(ctx context.Context, guest models.Guest, items []string, instructions string) (*models.RoomServiceOrder, error)
	GetOrderStatus(ctx context.Context, orderID string) (*models.RoomServiceOrder, error)
	GetGuestOrders(ctx context.Context, guestID string) ([]models.RoomServiceOrder, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}

// validOrderTransitions maps each order status to the statuses the
// kitchen may move it to.
var validOrderTransitions = map[string][]string{
	models.OrderStatusPending:    {models.OrderStatusInProgress, models.OrderStatusCancelled},
	models.OrderStatusInProgress: {models.OrderStatusDelivered, models.OrderStatusCancelled},
}

type DefaultRoomServiceService struct {
	orders orderRepo.OrderRepository
}

func NewRoomServiceService(orders orderRepo.OrderRepository) *DefaultRoomServiceService {
	return &DefaultRoomServiceService{orders: orders}
}

func (s *DefaultRoomServiceService) GetMenu() []models.MenuItem {
	return Menu()
}

// FormatMenu renders the catalog as chat-ready markdown.
func (s *DefaultRoomServiceService) FormatMenu() string {
	var b strings.Builder
	b.WriteString("**Menú de Servicio a la Habitación** (disponible 24 horas)\n\n")
	for _, item := range Menu() {
		fmt.Fprintf(&b, "- **%s** · $%s\n  %s\n", item.Name, formatPrice(item.Price), item.Description)
	}
	b.WriteString("\nPara ordenar, solo dígame qué le gustaría pedir.")
	return b.String()
}

// PlaceOrder resolves each requested item against the menu and persists
// the order. Items not on the menu go through at zero price for the
// kitchen to quote.
func (s *DefaultRoomServiceService) PlaceOrder(ctx context.Context, guest models.Guest, items []string, instructions string) (*models.RoomServiceOrder, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items to order")
	}

	order := models.RoomServiceOrder{
		GuestID:             guest.ID,
		RoomNumber:          guest.RoomNumber,
		SpecialInstructions: instructions,
		Status:              models.OrderStatusPending,
	}
	seen := make(map[string]bool)
	for _, requested := range items {
		item := FindMenuItem(requested)
		if seen[item.Name] {
			continue
		}
		seen[item.Name] = true
		order.Items = append(order.Items, models.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: 1,
		})
		order.TotalPrice += item.Price
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}
	order.ID = id

	utils.GetLogger().Info("Room service order placed",
		zap.String("orderId", id),
		zap.String("room", guest.RoomNumber),
		zap.Int("items", len(order.Items)))
	return &order, nil
}

func (s *DefaultRoomServiceService) GetOrderStatus(ctx context.Context, orderID string) (*models.RoomServiceOrder, error) {
	return s.orders.GetByID(ctx, orderID)
}

// GetGuestOrders lists a guest's orders, most recent first.
func (s *DefaultRoomServiceService) GetGuestOrders(ctx context.Context, guestID string) ([]models.RoomServiceOrder, error) {
	return s.orders.GetByGuest(ctx, guestID)
}

// UpdateOrderStatus moves an order through the kitchen workflow.
// Delivered and cancelled orders are final.
func (s *DefaultRoomServiceService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	allowed := false
	for _, next := range validOrderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("cannot move order from %s to %s", order.Status, status)
	}
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	utils.GetLogger().Info("Room service order status updated",
		zap.String("orderId", orderID), zap.String("status", status))
	return nil
}

// Confirmation builds the chat reply for a placed order. It always
// names the room and the order number so the guest can follow up.
func Confirmation(order *models.RoomServiceOrder) string {
	var b strings.Builder
	b.WriteString("¡Pedido confirmado! He registrado su orden:\n\n")
	for _, item := range order.Items {
		if item.Price > 0 {
			fmt.Fprintf(&b, "- %s · $%s\n", item.Name, formatPrice(item.Price))
		} else {
			fmt.Fprintf(&b, "- %s (precio por confirmar con la cocina)\n", item.Name)
		}
	}
	if order.SpecialInstructions != "" {
		fmt.Fprintf(&b, "\nInstrucciones: %s\n", order.SpecialInstructions)
	}
	fmt.Fprintf(&b, "\nTotal: $%s\n", formatPrice(order.TotalPrice))
	fmt.Fprintf(&b, "Será entregado a la habitación %s en aproximadamente 30 minutos. ", order.RoomNumber)
	fmt.Fprintf(&b, "Su número de orden es %s.", order.ID)
	return b.String()
}

// formatPrice renders COP amounts with thousands separators.
func formatPrice(price float64) string {
	n := int64(price)
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	var parts []string
	for n > 0 {
		if n >= 1000 {
			parts = append([]string{fmt.Sprintf("%03d", n%1000)}, parts...)
		} else {
			parts = append([]string{fmt.Sprintf("%d", n%1000)}, parts...)
		}
		n /= 1000
	}
	return strings.Join(parts, ".")
}
