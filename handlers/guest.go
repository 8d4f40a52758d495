package handlers

import (
	"net/http"

	"arame/config"
	"arame/models"
	"arame/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckInHandler registers a guest and opens their concierge session.
func (h *HandlerBundle) CheckInHandler(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in payload", err.Error())
		return
	}

	// A repeated check-in for an occupied room resumes the existing
	// stay instead of creating a duplicate guest.
	if existing, err := h.Guests.GetActiveByRoom(c.Request.Context(), req.RoomNumber); err == nil && existing != nil {
		c.JSON(http.StatusOK, gin.H{
			"guest_id": existing.ID,
			"message":  config.WelcomeMessage,
		})
		return
	}

	guest := models.Guest{
		Name:        req.Name,
		RoomNumber:  req.RoomNumber,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Preferences: req.Preferences,
		Language:    "es",
	}
	id, err := h.Guests.Create(c.Request.Context(), guest)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check in guest", err.Error())
		return
	}

	utils.GetLogger().Info("Guest checked in",
		zap.String("guestId", id), zap.String("room", req.RoomNumber))
	c.JSON(http.StatusCreated, gin.H{
		"guest_id": id,
		"message":  config.WelcomeMessage,
	})
}

// GetGuestHandler returns the guest profile.
func (h *HandlerBundle) GetGuestHandler(c *gin.Context) {
	guest, err := h.Guests.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, guest)
}

// UpdatePreferencesHandler replaces the guest's stated preferences.
func (h *HandlerBundle) UpdatePreferencesHandler(c *gin.Context) {
	var prefs models.GuestPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid preferences payload", err.Error())
		return
	}
	if err := h.Guests.UpdatePreferences(c.Request.Context(), c.Param("id"), prefs); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Guest not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferences updated"})
}
