package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloud-inquiry-balance-web/internal/config"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/client"
	"github.com/cloud-inquiry-balance-web/internal/inquiry/publishing"
	"github.com/cloud-inquiry-balance-web/internal/logger"
	"github.com/cloud-inquiry-balance-web/internal/platform/messaging/producers"
	"github.com/cloud-inquiry-balance-web/internal/web"
	"github.com/cloud-inquiry-balance-web/internal/web/service"
	"github.com/shopspring/decimal"
)

func main() {
	// Create base context with cancellation
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	// Initialize configuration
	cfg, err := config.LoadConfig("inquiry_web")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewLogger(cfg)

	// Balances go out as JSON numbers, the way the backend sends them
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize the outcome event publisher; a no-op when Kafka is disabled
	publisher, err := producers.NewEventPublisher(appCtx, log, &cfg.Kafka)
	if err != nil {
		log.Error("Failed to initialize inquiry event publisher", "error", err)
		os.Exit(1)
	}

	// Initialize the backend client and services
	backend := client.New(log, &cfg.Backend)
	inquirer := publishing.New(backend, publisher, "web", log)
	inquiryService := service.NewInquiryService(inquirer)

	// Initialize HTTP server
	server, err := web.NewServer(log, cfg, inquiryService)
	if err != nil {
		log.Error("Failed to initialize HTTP server", "error", err)
		os.Exit(1)
	}
	log.Info("HTTP server initialized", "backend", cfg.Backend.BaseURL, "kafka_enabled", cfg.Kafka.Enabled)

	// Create error channel for server errors
	errChan := make(chan error, 1)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Set up signal handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for a shutdown signal or error
	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Cancel the application context
	cancelAppCtx()

	// Create a shutdown context with timeout
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	shutdownErr := server.Stop(shutdownCtx)
	if shutdownErr != nil {
		log.Error("Error during server shutdown", "error", shutdownErr)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Error closing inquiry event publisher", "error", err)
		shutdownErr = err
	}

	if serverErr != nil || shutdownErr != nil {
		log.Error("Server shutdown completed with errors")
		os.Exit(1)
	}
	log.Info("Server shutdown completed successfully")
}
