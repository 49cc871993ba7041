package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/YATI3/memoregen-backend/internal/domain/provider"
)

// CheckoutHandler creates hosted checkout sessions
type CheckoutHandler struct {
	logger   *zap.Logger
	provider provider.CheckoutProvider
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(logger *zap.Logger, checkoutProvider provider.CheckoutProvider) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger,
		provider: checkoutProvider,
	}
}

// CreateCheckoutSession asks the provider for a subscription checkout
// session and returns its redirect URL. Provider failures surface as a
// generic error; internals stay in the log.
func (h *CheckoutHandler) CreateCheckoutSession(c echo.Context) error {
	session, err := h.provider.CreateCheckoutSession(c.Request().Context())
	if err != nil {
		h.logger.Error("Error creating checkout session",
			zap.String("provider", h.provider.GetProviderName()),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "unable to create checkout session",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"url": session.URL,
	})
}
