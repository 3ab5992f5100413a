package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelagency/internal/config"
	"travelagency/internal/consumers"
	"travelagency/internal/logger"
)

func main() {
	cfg := config.Load()

	// Отдельный клиентский ID, чтобы не конфликтовать с API
	cfg.NATS.ClientID = "travel-agency-consumers"

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	log.Info("Starting consumers service...")

	consumerService, err := consumers.NewConsumerService(cfg)
	if err != nil {
		logger.Fatal("Failed to create consumer service", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumerService.Start(ctx); err != nil {
		logger.Fatal("Failed to start consumers", "error", err)
	}

	log.Info("Consumers service started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down consumers service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := consumerService.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", "error", err)
	}

	log.Info("Consumers service stopped")
}
