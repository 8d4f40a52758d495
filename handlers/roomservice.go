package handlers

import (
	"net/http"

	"arame/utils"

	"github.com/gin-gonic/gin"
)

// MenuHandler returns the room service catalog.
func (h *HandlerBundle) MenuHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"menu": h.RoomService.GetMenu()})
}

type orderRequest struct {
	GuestID             string   `json:"guest_id" binding:"required"`
	Items               []string `json:"items" binding:"required"`
	SpecialInstructions string   `json:"special_instructions"`
}

// OrderHandler places a room service order outside the chat flow.
func (h *HandlerBundle) OrderHandler(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid order payload", err.Error())
		return
	}

	guest, err := h.Guests.GetByID(c.Request.Context(), req.GuestID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found", err.Error())
		return
	}

	order, err := h.RoomService.PlaceOrder(c.Request.Context(), *guest, req.Items, req.SpecialInstructions)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not place order", err.Error())
		return
	}
	c.JSON(http.StatusCreated, order)
}

// OrderStatusHandler returns one order by id.
func (h *HandlerBundle) OrderStatusHandler(c *gin.Context) {
	order, err := h.RoomService.GetOrderStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Order not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, order)
}

// GuestOrdersHandler lists a guest's orders, most recent first.
func (h *HandlerBundle) GuestOrdersHandler(c *gin.Context) {
	guestID := c.Query("guest_id")
	if guestID == "" {
		utils.JSONError(c, http.StatusBadRequest, "guest_id is required", "")
		return
	}
	orders, err := h.RoomService.GetGuestOrders(c.Request.Context(), guestID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatusHandler moves an order through the kitchen workflow.
func (h *HandlerBundle) UpdateOrderStatusHandler(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}
	if err := h.RoomService.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not update order", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}
