package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-edc-backend/config"
	v1 "go-edc-backend/internal/delivery/http/v1"
	"go-edc-backend/internal/usecase"
	"go-edc-backend/pkg/email"
	"go-edc-backend/pkg/logger"
	"go-edc-backend/pkg/redis"
	"go-edc-backend/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting EDC contact backend", "port", cfg.Port)

	// 3. Setup Redis (optional - rate limiter falls back to in-memory)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory store", "error", err.Error())
	}
	defer redis.Close()

	// 4. Setup Mailer
	mailer := email.NewService(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Resend API key not configured - contact emails will be logged, not sent")
	}

	// 5. Setup UseCases and shared validator
	contactUC := usecase.NewContactUsecase(mailer)
	contactValidator := validation.NewContactValidator()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Validator: contactValidator,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
