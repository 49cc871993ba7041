package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"

	"github.com/YATI3/memoregen-backend/internal/usecase"
)

// WebhookHandler authenticates Stripe webhook notifications and converts
// checkout completions into durable premium state.
type WebhookHandler struct {
	logger        *zap.Logger
	webhookSecret string
	subscriptions *usecase.SubscriptionUsecase
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(logger *zap.Logger, webhookSecret string, subscriptions *usecase.SubscriptionUsecase) *WebhookHandler {
	return &WebhookHandler{
		logger:        logger,
		webhookSecret: webhookSecret,
		subscriptions: subscriptions,
	}
}

// HandleWebhook verifies the signature over the exact raw body bytes, then
// applies the premium state transition for checkout.session.completed
// events. Every signed event gets a 2xx acknowledgement unless the store
// write fails, in which case a 500 makes Stripe redeliver. No state is
// touched before verification succeeds.
func (h *WebhookHandler) HandleWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("Error reading webhook body", zap.Error(err))
		return c.String(http.StatusBadRequest, "error reading request body")
	}

	sig := c.Request().Header.Get("Stripe-Signature")

	event, err := webhook.ConstructEventWithOptions(
		body,
		sig,
		h.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		h.logger.Error("Webhook signature verification failed", zap.Error(err))
		return c.String(http.StatusBadRequest, "webhook signature verification failed")
	}

	h.logger.Info("Webhook event received",
		zap.String("type", string(event.Type)),
		zap.String("id", event.ID),
		zap.Time("created", time.Unix(event.Created, 0)),
	)

	if event.Type != stripe.EventTypeCheckoutSessionCompleted {
		// Stripe retries anything without a 2xx, so unhandled types are
		// acknowledged without action.
		return h.received(c)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		h.logger.Error("Error parsing checkout session",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return h.received(c)
	}

	var email string
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		h.logger.Warn("Completed session without customer email",
			zap.String("session_id", session.ID),
		)
		return h.received(c)
	}

	if err := h.subscriptions.ActivatePremium(c.Request().Context(), email, string(session.Locale)); err != nil {
		h.logger.Error("Premium activation failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "failed to record subscription",
		})
	}

	return h.received(c)
}

func (h *WebhookHandler) received(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"received": true})
}
