package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldbook/config"
	"fieldbook/cron"
	"fieldbook/database"
	bookingRepoPkg "fieldbook/database/repository/booking"
	dashboardRepoPkg "fieldbook/database/repository/dashboard"
	fieldRepoPkg "fieldbook/database/repository/field"
	userRepoPkg "fieldbook/database/repository/user"
	"fieldbook/handlers"
	"fieldbook/middleware"
	"fieldbook/routes"
	"fieldbook/services/booking"
	"fieldbook/services/dashboard"
	"fieldbook/services/field"
	"fieldbook/services/notification"
	"fieldbook/services/user"
	"fieldbook/utils"

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
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	fieldRepo := fieldRepoPkg.NewMongoFieldRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	dashboardRepo := dashboardRepoPkg.NewMongoDashboardRepo()

	// services.
	notifier := notification.NewAsynqNotifier()
	defer notifier.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		UserRepo:  userRepo,
		FieldRepo: fieldRepo,
		Notifier:  notifier,
	}
	fieldService := &field.DefaultFieldService{Repo: fieldRepo}
	userService := &user.DefaultUserService{Repo: userRepo}
	dashboardService := &dashboard.DefaultDashboardService{
		Repo:  dashboardRepo,
		Cache: utils.GetCacheClient(),
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:   handlers.NewBookingHandler(bookingService, logger),
		Field:     handlers.NewFieldHandler(fieldService),
		User:      handlers.NewUserHandler(userService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers: the completion sweeper and the notify consumer.
	sweeperCtx, stopSweeper := context.WithCancel(context.Background())
	defer stopSweeper()
	sweeper := &booking.CompletionSweeper{
		Repo:     bookingRepo,
		Interval: time.Duration(config.AppConfig.SweepIntervalSeconds) * time.Second,
	}
	go sweeper.Run(sweeperCtx)
	cron.InitNotifyWorker()

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

	stopSweeper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
