// File: festivo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festivo/config"
	"festivo/cron"
	"festivo/database"
	bookingRepo "festivo/database/repository/booking"
	catalogRepo "festivo/database/repository/catalog"
	vendorRepo "festivo/database/repository/vendor"
	"festivo/handlers"
	"festivo/middleware"
	"festivo/routes"
	"festivo/services/booking"
	"festivo/services/negotiation"
	"festivo/services/notification"
	"festivo/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookRepo := bookingRepo.NewMongoBookingRepo()
	pkgRepo := catalogRepo.NewMongoCatalogRepo()
	vendRepo := vendorRepo.NewMongoVendorRepo()

	// services.
	sessionStore := negotiation.NewSessionStore(utils.GetSessionCacheClient(), utils.SessionCacheTTL)
	negotiationService := &negotiation.DefaultService{
		Store:  sessionStore,
		Engine: negotiation.NewEngine(nil),
	}

	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	bookingService := &booking.DefaultService{
		Sessions: sessionStore,
		Repo:     bookRepo,
		Queue:    queueClient,
	}

	notificationService, err := notification.NewDefaultService(vendRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitNotifyWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(negotiationService, bookingService, logger),
		Catalog: handlers.NewCatalogHandler(pkgRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
