package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Prasannaverse13/FixMyCode/internal/config"
	"github.com/Prasannaverse13/FixMyCode/internal/logging"
	"github.com/Prasannaverse13/FixMyCode/internal/reasoner"
	"github.com/Prasannaverse13/FixMyCode/internal/service"
	"github.com/Prasannaverse13/FixMyCode/internal/store"
	handler "github.com/Prasannaverse13/FixMyCode/internal/transport/http"
	"github.com/Prasannaverse13/FixMyCode/policy"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Init(cfg)

	mockMode := os.Getenv(reasoner.EnvMode) == reasoner.ModeMock
	if err := cfg.Validate(mockMode); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	logrus.Info("Starting FixMyCode...")
	logrus.Infof("HTTP Port: %d", cfg.HTTPPort)
	logrus.Infof("Database: %s", cfg.DatabaseURL)
	logrus.Infof("Reasoning endpoint: %s (model %s)", cfg.LLMBaseURL, cfg.LLMModel)

	// Initialize store
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize reasoning gateway
	gateway := reasoner.NewGateway(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		logrus.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize service and server
	svc := service.New(db, gateway, policyEngine, cfg)
	server := handler.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.Infof("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Failed to shutdown server gracefully: %v", err)
	}

	logrus.Info("Stopped")
}
