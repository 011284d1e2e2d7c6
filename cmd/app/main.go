package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/SchmidtMatheus/gym-simulator-web/internal/config"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/db"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/logger"
	"github.com/SchmidtMatheus/gym-simulator-web/internal/server"
)

// @title Gym Studio API
// @version 1.0
// @description Booking and reporting backend for the studio dashboard.
// @host localhost:8080
// @BasePath /
func main() {
	logger.Init()
	logger.Info("Starting gym studio backend")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	redisClient := connectRedis(cfg.RedisAddr)
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv := server.New(database, cfg, redisClient)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

// connectRedis returns nil when no address is configured or redis is down;
// the report cache degrades to compute-always.
func connectRedis(addr string) *redis.Client {
	if addr == "" {
		logger.Info("Redis not configured, report cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Error("Redis unreachable, report cache disabled")
		client.Close()
		return nil
	}

	logger.Info("Redis connected")
	return client
}
