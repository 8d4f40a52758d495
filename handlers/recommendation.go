package handlers

import (
	"net/http"

	"arame/models"
	"arame/services/recommendation"
	"arame/utils"

	"github.com/gin-gonic/gin"
)

// RecommendationsHandler ranks the catalog for the query parameters.
func (h *HandlerBundle) RecommendationsHandler(c *gin.Context) {
	var interests []string
	guestID := c.Query("guest_id")
	if guestID != "" {
		if guest, err := h.Guests.GetByID(c.Request.Context(), guestID); err == nil {
			interests = guest.Preferences.Interests
		}
	}

	var weather models.Weather
	if h.Weather != nil {
		weather = h.Weather.Get(c.Request.Context())
	}

	recs, err := h.Recommender.Recommend(c.Request.Context(), recommendation.Request{
		Category:   c.Query("category"),
		TimePeriod: c.Query("time_period"),
		Interests:  interests,
		Weather:    weather,
	})
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load recommendations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// CategoriesHandler lists the recommendation categories.
func (h *HandlerBundle) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Recommender.GetCategories()})
}
