package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/YATI3/memoregen-backend/internal/usecase"
)

// PremiumHandler answers premium status queries
type PremiumHandler struct {
	logger        *zap.Logger
	subscriptions *usecase.SubscriptionUsecase
}

// NewPremiumHandler creates a new premium query handler
func NewPremiumHandler(logger *zap.Logger, subscriptions *usecase.SubscriptionUsecase) *PremiumHandler {
	return &PremiumHandler{
		logger:        logger,
		subscriptions: subscriptions,
	}
}

// CheckPremium returns {premium: bool} for the email path parameter. An
// unknown identity is premium:false; a store failure is a 500, so callers
// can tell "not premium" from "unknown".
func (h *PremiumHandler) CheckPremium(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "email is required",
		})
	}

	premium, err := h.subscriptions.CheckPremium(c.Request().Context(), email)
	if err != nil {
		h.logger.Error("Premium lookup failed",
			zap.String("email", email),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "premium store unavailable, retry later",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"premium": premium,
	})
}
