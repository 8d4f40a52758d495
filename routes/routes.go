package routes

import (
	"net/http"
	"time"

	"arame/config"
	"arame/handlers"
	"arame/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterGuestRoutes registers check-in and profile endpoints.
func RegisterGuestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/guests")
	{
		api.POST("/checkin", hb.CheckInHandler)
		api.GET("/:id", hb.GetGuestHandler)
		api.PUT("/:id/preferences", hb.UpdatePreferencesHandler)
	}
}

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/message", hb.ChatHandler)
	}
}

// RegisterRoomServiceRoutes registers menu and ordering endpoints.
func RegisterRoomServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/room-service")
	{
		api.GET("/menu", hb.MenuHandler)
		api.POST("/orders", hb.OrderHandler)
		api.GET("/orders", hb.GuestOrdersHandler)
		api.GET("/orders/:id", hb.OrderStatusHandler)
		api.PUT("/orders/:id/status", hb.UpdateOrderStatusHandler)
	}
}

// RegisterTransportationRoutes registers the ride booking endpoints.
func RegisterTransportationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/transportation")
	{
		api.POST("/schedule", hb.ScheduleHandler)
		api.GET("/requests/:id", hb.TransportStatusHandler)
		api.PUT("/requests/:id/status", hb.UpdateTransportStatusHandler)
		api.GET("/upcoming/:guestId", hb.UpcomingTransportHandler)
	}
}

// RegisterConciergeRoutes registers recommendations, FAQ and weather.
func RegisterConciergeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/recommendations", hb.RecommendationsHandler)
		api.GET("/recommendations/categories", hb.CategoriesHandler)
		api.POST("/faq", hb.FAQHandler)
		api.GET("/weather", hb.WeatherHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm " + config.AssistantName + " from " + config.HotelName,
			"checks":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterGuestRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterRoomServiceRoutes(r, hb)
	RegisterTransportationRoutes(r, hb)
	RegisterConciergeRoutes(r, hb)
	RegisterHealthRoute(r)
}
