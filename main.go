package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arame/config"
	"arame/cron"
	"arame/database"
	conversationRepo "arame/database/repository/conversation"
	guestRepo "arame/database/repository/guest"
	orderRepo "arame/database/repository/order"
	recommendationRepo "arame/database/repository/recommendation"
	transportRepo "arame/database/repository/transport"
	"arame/handlers"
	"arame/middleware"
	"arame/routes"
	"arame/services/ai"
	"arame/services/dialogue"
	"arame/services/faq"
	"arame/services/places"
	"arame/services/recommendation"
	"arame/services/roomservice"
	"arame/services/transportation"
	"arame/services/weather"
	"arame/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware())

	// Repositories.
	guests := guestRepo.NewMongoGuestRepo()
	orders := orderRepo.NewMongoOrderRepo()
	transports := transportRepo.NewMongoTransportRepo()
	conversations := conversationRepo.NewMongoConversationRepo()
	catalog := recommendationRepo.NewMongoRecommendationRepo()

	// Background reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer asynqClient.Close()

	reminderWorker := cron.NewWorker(transports)
	reminderWorker.Start()
	defer reminderWorker.Shutdown()

	// Services.
	placesClient := places.NewClient(config.AppConfig.GoogleMapsAPIKey)
	faqService := faq.NewFAQService()
	roomServiceSvc := roomservice.NewRoomServiceService(orders)
	transportSvc := transportation.NewTransportationService(transports, asynqClient)
	recommenderSvc := recommendation.NewRecommendationService(catalog, placesClient)
	weatherCache := weather.NewCache(
		weather.NewOpenWeatherFetcher(config.AppConfig.OpenWeatherAPIKey),
		time.Duration(config.AppConfig.WeatherUpdateMins)*time.Minute,
		nil,
	)

	responder, err := ai.NewGeminiResponder(context.Background())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize generative responder: %v", err)
	}
	defer responder.Close()

	contextStore := dialogue.NewRedisContextStore(utils.GetContextCacheClient())
	dialogueManager := dialogue.NewManager(dialogue.ManagerDeps{
		Store:         contextStore,
		Guests:        guests,
		Conversations: conversations,
		FAQs:          faqService,
		RoomService:   roomServiceSvc,
		Transport:     transportSvc,
		Recommender:   recommenderSvc,
		Weather:       weatherCache,
		Responder:     responder,
	})

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		guests,
		dialogueManager,
		faqService,
		roomServiceSvc,
		transportSvc,
		recommenderSvc,
		weatherCache,
	)
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetContextCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("Starting server on %s...", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
