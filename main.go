package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"luxride/config"
	"luxride/cron"
	"luxride/database"
	bookingRepoPkg "luxride/database/repository/booking"
	contactRepoPkg "luxride/database/repository/contact"
	paymentRepoPkg "luxride/database/repository/payment"
	"luxride/handlers"
	"luxride/middleware"
	"luxride/routes"
	"luxride/services/booking"
	"luxride/services/contact"
	"luxride/services/payment"
	"luxride/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	defer database.CloseDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create booking indexes: %v", err)
	}
	if err := paymentRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create payment indexes: %v", err)
	}

	// services.
	bookingService := &booking.DefaultBookingService{
		Repo: bookingRepo,
	}
	contactService := &contact.DefaultContactService{
		Repo: contactRepo,
	}

	stripeProvider := payment.NewStripeProvider(
		config.AppConfig.StripeKey,
		config.AppConfig.StripeWebhookSecret,
	)
	sweepClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepQueueDB,
	})
	defer sweepClient.Close()

	paymentService := &payment.DefaultPaymentService{
		Provider:    stripeProvider,
		TxnRepo:     paymentRepo,
		BookingRepo: bookingRepo,
		Cache:       utils.GetCacheClient(),
		SweepClient: sweepClient,
	}

	// Background worker that re-polls checkout sessions.
	cron.InitPaymentSweepWorker(paymentService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService),
		Contact: handlers.NewContactHandler(contactService),
		Payment: handlers.NewPaymentHandler(paymentService),
	}
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
