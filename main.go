// File: theorybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"theorybook/config"
	"theorybook/database"
	slotsRepo "theorybook/database/repository/slots"
	"theorybook/handlers"
	"theorybook/middleware"
	"theorybook/routes"
	"theorybook/services/appointment"
	"theorybook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and stores.
	slotRepo := slotsRepo.NewMongoSlotRepo()
	attemptStore := appointment.NewRedisAttemptStore()

	// The appointment selection flow.
	nearTerm := appointment.RejectTodayOnly
	if config.AppConfig.RejectTomorrow {
		nearTerm = appointment.RejectTodayAndTomorrow
	}
	appointmentService := &appointment.DefaultAppointmentService{
		Slots: slotRepo,
		Store: attemptStore,
		Zone:  utils.ReferenceLocation(),
		Now:   time.Now,
		Config: appointment.ServiceConfig{
			NearTerm: nearTerm,
			Navigator: appointment.NavigatorConfig{
				WeekStart:        time.Weekday(config.AppConfig.WeekStartDay % 7),
				MobileWindowDays: config.AppConfig.MobileWindowDays,
			},
		},
		Logger: logger,
	}

	appointmentHandler := handlers.NewAppointmentHandler(appointmentService, logger)
	routes.RegisterRoutes(router, appointmentHandler)

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
