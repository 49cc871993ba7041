package http

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/zap"

	handlers "github.com/YATI3/memoregen-backend/internal/adapter/handler/http"
	"github.com/YATI3/memoregen-backend/internal/config"
	"github.com/YATI3/memoregen-backend/internal/domain/provider"
	"github.com/YATI3/memoregen-backend/internal/domain/repository"
	"github.com/YATI3/memoregen-backend/internal/usecase"
)

type Server struct {
	config        *config.Config
	logger        *zap.Logger
	echo          *echo.Echo
	repo          repository.PremiumRepository
	checkout      provider.CheckoutProvider
	subscriptions *usecase.SubscriptionUsecase
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	repo repository.PremiumRepository,
	checkout provider.CheckoutProvider,
	subscriptions *usecase.SubscriptionUsecase,
) *Server {
	e := echo.New()
	e.HideBanner = true

	// Initialize Stripe
	stripe.Key = cfg.Service.StripeSecretKey

	// Middleware. No global body parsing: the webhook route must see the
	// raw bytes or signature verification breaks, so binding stays
	// per-handler.
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config:        cfg,
		logger:        logger,
		echo:          e,
		repo:          repo,
		checkout:      checkout,
		subscriptions: subscriptions,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.logger, s.repo)
	checkoutHandler := handlers.NewCheckoutHandler(s.logger, s.checkout)
	premiumHandler := handlers.NewPremiumHandler(s.logger, s.subscriptions)
	webhookHandler := handlers.NewWebhookHandler(s.logger, s.config.Service.StripeWebhookSecret, s.subscriptions)

	// Liveness & debug
	s.echo.GET("/", healthHandler.Root)
	s.echo.GET("/debug", healthHandler.Debug)

	// Client-facing API
	api := s.echo.Group("/api")
	api.POST("/stripe/create-checkout-session", checkoutHandler.CreateCheckoutSession)
	api.GET("/check-premium/:email", premiumHandler.CheckPremium)

	// Webhook route (outside API versioning, raw body)
	s.echo.POST("/webhook", webhookHandler.HandleWebhook)
}
