package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	mongoRepository "github.com/YATI3/memoregen-backend/internal/adapter/repository"
	"github.com/YATI3/memoregen-backend/internal/config"
	"github.com/YATI3/memoregen-backend/internal/infrastructure/database"
	httpServer "github.com/YATI3/memoregen-backend/internal/infrastructure/http"
	"github.com/YATI3/memoregen-backend/internal/infrastructure/mail"
	stripeProvider "github.com/YATI3/memoregen-backend/internal/infrastructure/provider/stripe"
	"github.com/YATI3/memoregen-backend/internal/usecase"
)

func main() {
	// .env is a local development convenience; absence is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize document store connection
	client, err := database.NewClient(&cfg.Store, logger)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := database.Close(ctx, client, logger); err != nil {
			logger.Error("Failed to close document store connection", zap.Error(err))
		}
	}()

	// Wire repository, provider, mailer and usecases
	repo := mongoRepository.NewPremiumRepository(
		client.Database(cfg.Store.Database),
		cfg.Store.PremiumCollection,
		cfg.Store.Timeout(),
		logger,
	)

	checkout := stripeProvider.NewStripeProvider(cfg.Service.StripePriceID, cfg.Service.ClientURL, logger)

	mailer := mail.NewSMTPClient(mail.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUser,
		Password: cfg.Email.SMTPPass,
		From:     cfg.Email.Sender,
	}, logger)

	notifier := usecase.NewNotificationService(mailer, cfg.Email.Timeout(), logger)
	subscriptions := usecase.NewSubscriptionUsecase(repo, notifier, logger)

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httpServer.NewServer(cfg, logger, repo, checkout, subscriptions)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}

	logger.Info("Server shut down successfully")
}
