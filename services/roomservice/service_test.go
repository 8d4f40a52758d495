package roomservice

import (
	"context"
	"testing"

	"arame/models"
	"arame/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitializeLogger()
}

type fakeOrderRepo struct {
	created []models.RoomServiceOrder
}

func (f *fakeOrderRepo) Create(_ context.Context, order models.RoomServiceOrder) (string, error) {
	order.ID = uuid.New().String()
	f.created = append(f.created, order)
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*models.RoomServiceOrder, error) {
	for i := range f.created {
		if f.created[i].ID == id {
			return &f.created[i], nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeOrderRepo) GetByGuest(_ context.Context, guestID string) ([]models.RoomServiceOrder, error) {
	var out []models.RoomServiceOrder
	for _, o := range f.created {
		if o.GuestID == guestID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.created {
		if f.created[i].ID == id {
			f.created[i].Status = status
			return nil
		}
	}
	return assert.AnError
}

func TestFindMenuItem(t *testing.T) {
	t.Run("partial name matches", func(t *testing.T) {
		item := FindMenuItem("hamburguesa")
		assert.Equal(t, "Hamburguesa Aramé", item.Name)
		assert.Greater(t, item.Price, 0.0)
	})

	t.Run("request containing full name matches", func(t *testing.T) {
		item := FindMenuItem("una bandeja paisa bien servida")
		assert.Equal(t, "Bandeja Paisa", item.Name)
	})

	t.Run("unknown item comes back at zero price", func(t *testing.T) {
		item := FindMenuItem("caviar beluga")
		assert.Equal(t, "caviar beluga", item.Name)
		assert.Equal(t, 0.0, item.Price)
	})
}

func TestPlaceOrder(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewRoomServiceService(repo)
	guest := models.Guest{ID: "g-1", RoomNumber: "804"}

	order, err := svc.PlaceOrder(context.Background(), guest, []string{"hamburguesa", "limonada"}, "sin cebolla")
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "804", order.RoomNumber)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, "sin cebolla", order.SpecialInstructions)
	assert.Greater(t, order.TotalPrice, 0.0)
}

func TestPlaceOrderRejectsEmpty(t *testing.T) {
	svc := NewRoomServiceService(&fakeOrderRepo{})
	_, err := svc.PlaceOrder(context.Background(), models.Guest{}, nil, "")
	assert.Error(t, err)
}

func TestConfirmationNamesRoomAndOrder(t *testing.T) {
	order := &models.RoomServiceOrder{
		ID:         "ord-123",
		RoomNumber: "804",
		Items:      []models.OrderItem{{Name: "Tiramisú", Price: 21000, Quantity: 1}},
		TotalPrice: 21000,
	}
	msg := Confirmation(order)
	assert.Contains(t, msg, "804")
	assert.Contains(t, msg, "ord-123")
	assert.Contains(t, msg, "21.000")
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewRoomServiceService(repo)
	order, err := svc.PlaceOrder(context.Background(), models.Guest{ID: "g-1", RoomNumber: "804"}, []string{"hamburguesa"}, "")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusInProgress))
	require.NoError(t, svc.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusDelivered))

	err = svc.UpdateOrderStatus(context.Background(), order.ID, models.OrderStatusPending)
	assert.Error(t, err)
}

func TestGetGuestOrders(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewRoomServiceService(repo)
	_, err := svc.PlaceOrder(context.Background(), models.Guest{ID: "g-1", RoomNumber: "804"}, []string{"limonada"}, "")
	require.NoError(t, err)

	orders, err := svc.GetGuestOrders(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "9.000", formatPrice(9000))
	assert.Equal(t, "48.000", formatPrice(48000))
	assert.Equal(t, "1.250.000", formatPrice(1250000))
	assert.Equal(t, "800", formatPrice(800))
}
