package handlers

import (
	"net/http"

	"arame/models"
	"arame/utils"

	"github.com/gin-gonic/gin"
)

type scheduleRequest struct {
	GuestID       string `json:"guest_id" binding:"required"`
	Destination   string `json:"destination" binding:"required"`
	PickupTime    string `json:"pickup_time"`
	VehicleType   string `json:"vehicle_type"`
	NumPassengers int    `json:"num_passengers"`
	SpecialNotes  string `json:"special_notes"`
}

// ScheduleHandler books a ride outside the chat flow.
func (h *HandlerBundle) ScheduleHandler(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid schedule payload", err.Error())
		return
	}

	guest, err := h.Guests.GetByID(c.Request.Context(), req.GuestID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found", err.Error())
		return
	}

	request, err := h.Transport.Schedule(c.Request.Context(), *guest, models.TransportationSlots{
		Destination:   req.Destination,
		PickupTime:    req.PickupTime,
		VehicleType:   req.VehicleType,
		NumPassengers: req.NumPassengers,
		SpecialNotes:  req.SpecialNotes,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not schedule transportation", err.Error())
		return
	}
	c.JSON(http.StatusCreated, request)
}

// TransportStatusHandler returns one request by id.
func (h *HandlerBundle) TransportStatusHandler(c *gin.Context) {
	request, err := h.Transport.GetStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Transportation request not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, request)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTransportStatusHandler moves a request through its lifecycle.
func (h *HandlerBundle) UpdateTransportStatusHandler(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}
	if err := h.Transport.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// UpcomingTransportHandler lists a guest's pending and confirmed rides.
func (h *HandlerBundle) UpcomingTransportHandler(c *gin.Context) {
	requests, err := h.Transport.GetUpcoming(c.Request.Context(), c.Param("guestId"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list requests", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}
