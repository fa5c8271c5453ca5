// File: thalibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"thalibook/config"
	"thalibook/cron"
	"thalibook/database"
	reservationRepo "thalibook/database/repository/reservation"
	restaurantRepoPkg "thalibook/database/repository/restaurant"
	tableRepoPkg "thalibook/database/repository/table"
	"thalibook/handlers"
	"thalibook/middleware"
	"thalibook/routes"
	"thalibook/services/booking"
	"thalibook/services/notification"
	"thalibook/services/restaurant"
	"thalibook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	restaurantRepo := restaurantRepoPkg.NewMongoRestaurantRepo()
	tableRepo := tableRepoPkg.NewMongoTableRepo()
	resRepo := reservationRepo.NewMongoReservationRepo()

	// notification queue.
	queueOpt := utils.QueueRedisOpt()
	queueClient := asynq.NewClient(queueOpt)
	defer queueClient.Close()
	notifier := notification.NewAsynqSink(queueClient)
	cron.InitNotificationWorker(queueOpt)

	// services.
	bookingEngine := &booking.DefaultBookingEngine{
		Restaurants:  restaurantRepo,
		Tables:       tableRepo,
		Reservations: resRepo,
		Notifier:     notifier,
	}
	directoryService := &restaurant.DefaultDirectoryService{
		Repo:     restaurantRepo,
		Tables:   tableRepo,
		Cache:    utils.GetCacheClient(),
		Notifier: notifier,
	}

	bookingHandler := handlers.NewBookingHandler(bookingEngine, logger)
	restaurantHandler := handlers.NewRestaurantHandler(directoryService, bookingEngine, logger)

	routes.RegisterRoutes(router, bookingHandler, restaurantHandler)

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
