package main

import (
	"context"
	netHttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"student-portal/config"
	"student-portal/http"
	"student-portal/http/handlers"
	"student-portal/logger"
	"student-portal/services/events"
	"student-portal/store"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize Kafka producer (non-fatal, disabled without brokers)
	events.InitProducer()

	// Seed the in-memory store and wire the handlers
	st := store.New()
	h := handlers.New(st)

	srv := &netHttp.Server{
		Addr:    config.AppConfig.HTTPAddr,
		Handler: http.SetupRoutes(h),
	}

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting on %s", config.AppConfig.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != netHttp.ErrServerClosed {
			logger.Fatal("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Error shutting down server: %v", err)
	}

	// Close Kafka producer gracefully
	if err := events.Close(); err != nil {
		logger.Error("Error closing Kafka producer: %v", err)
	}

	logger.Info("Server shutdown complete")
}
