// File: cleansweep/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleansweep/config"
	"cleansweep/database"
	bookingRepo "cleansweep/database/repository/booking"
	cleanerRepo "cleansweep/database/repository/cleaner"
	serviceRepo "cleansweep/database/repository/service"
	"cleansweep/handlers"
	"cleansweep/middleware"
	"cleansweep/routes"
	"cleansweep/services/booking"
	"cleansweep/services/catalog"
	"cleansweep/services/cleaner"
	"cleansweep/services/schema"
	"cleansweep/utils"

	"github.com/gin-gonic/gin"
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
	bkRepo := bookingRepo.NewMongoBookingRepo()
	clRepo := cleanerRepo.NewMongoCleanerRepo()
	svRepo := serviceRepo.NewMongoServiceRepo()

	// services.
	registry := schema.NewRegistry()
	validator := schema.NewValidator(registry)

	catalogService := &catalog.DefaultCatalogService{
		Repo:      svRepo,
		Validator: validator,
		Cache:     utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingService{
		Repo:        bkRepo,
		CleanerRepo: clRepo,
		ServiceRepo: svRepo,
		Policy:      booking.PolicyFromConfig(),
	}

	cleanerService := &cleaner.DefaultCleanerService{
		Repo:        clRepo,
		BookingRepo: bkRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Service: handlers.NewServiceHandler(catalogService),
		Cleaner: handlers.NewCleanerHandler(cleanerService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
