// File: slotmart/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"slotmart/config"
	"slotmart/cron"
	"slotmart/database"
	appointmentRepo "slotmart/database/repository/appointment"
	sellerRepoPkg "slotmart/database/repository/seller"
	userRepoPkg "slotmart/database/repository/user"
	"slotmart/handlers"
	"slotmart/middleware"
	"slotmart/routes"
	"slotmart/services/booking"
	"slotmart/services/payment"
	"slotmart/services/seller"
	"slotmart/services/tasks"
	"slotmart/services/user"
	"slotmart/utils"
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
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	sellerRepo := sellerRepoPkg.NewMongoSellerRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	reminderScheduler := tasks.NewAsynqReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		SellerRepo: sellerRepo,
		ApptRepo:   apptRepo,
		UserRepo:   userRepo,
		Reminders:  reminderScheduler,
	}
	sellerService := &seller.DefaultSellerService{
		Repo:  sellerRepo,
		Cache: utils.GetCacheClient(),
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	paymentService := &payment.DefaultPaymentService{
		ApptRepo: apptRepo,
		Booking:  bookingService,
	}

	// Start the reminder worker.
	cron.InitReminderWorker(apptRepo)

	// Register routes.
	routes.RegisterRoutes(router, &routes.Handlers{
		User:    handlers.NewUserHandler(userService),
		Seller:  handlers.NewSellerHandler(sellerService),
		Admin:   handlers.NewAdminHandler(sellerService, bookingService),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(paymentService),
	})

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
