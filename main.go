// File: tripnest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripnest/config"
	"tripnest/database"
	bookingRepo "tripnest/database/repository/bookingrecord"
	"tripnest/handlers"
	"tripnest/middleware"
	"tripnest/routes"
	"tripnest/services/booking"
	"tripnest/services/search"
	"tripnest/services/supplier"
	"tripnest/services/trip"
	"tripnest/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitTripCache()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// Supplier client.
	supplierClient := supplier.NewHTTPClient(
		config.AppConfig.SupplierBaseURL,
		config.AppConfig.SupplierAPIKey,
		logger,
	)

	// Task queue client (post-booking notifications).
	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
	})
	defer taskClient.Close()

	// Stores and repositories.
	tripStore := trip.NewRedisStateStore(utils.GetTripCacheClient(), 2*time.Hour)
	sessionStore := booking.NewRedisSessionStore(utils.GetSessionCacheClient(), 30*time.Minute)
	archiveRepo := bookingRepo.NewMongoBookingRepo()

	// Services.
	tripService := &trip.DefaultTripService{
		Store:    tripStore,
		PageSize: config.AppConfig.DisplayPageSize,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Client:       supplierClient,
		Store:        sessionStore,
		Archive:      archiveRepo,
		Tasks:        taskClient,
		ResendWindow: time.Duration(config.AppConfig.ResendWindowSecs) * time.Second,
		Logger:       logger,
	}

	defaults := search.Defaults{
		Currency:    config.AppConfig.DefaultCurrency,
		Nationality: config.AppConfig.DefaultNationality,
	}

	// Handlers.
	tripHandler := handlers.NewTripHandler(tripService, supplierClient, defaults, config.AppConfig.FetchBatchSize, logger)
	hotelHandler := handlers.NewHotelHandler(supplierClient, tripService, defaults, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, tripService, logger)

	routes.RegisterRoutes(router, tripHandler, hotelHandler, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
