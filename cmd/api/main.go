package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelagency/internal/api"
	"travelagency/internal/config"
	"travelagency/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.Get()

	server := api.NewServer(cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.GetRouter(),
	}

	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Ждем сигнал для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if err := server.Cleanup(); err != nil {
		log.Error("Error during cleanup", "error", err)
	}

	log.Info("Server stopped")
}
