package handlers

import (
	"net/http"

	"arame/services/weather"

	"github.com/gin-gonic/gin"
)

// WeatherHandler returns current conditions at the hotel.
func (h *HandlerBundle) WeatherHandler(c *gin.Context) {
	current := h.Weather.Get(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"weather":     current,
		"description": weather.Describe(current),
	})
}
