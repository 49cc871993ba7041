package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/YATI3/memoregen-backend/internal/domain/repository"
)

// HealthHandler serves the liveness and store debug endpoints
type HealthHandler struct {
	logger *zap.Logger
	repo   repository.PremiumRepository
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *zap.Logger, repo repository.PremiumRepository) *HealthHandler {
	return &HealthHandler{
		logger: logger,
		repo:   repo,
	}
}

// Root is a plain liveness check
func (h *HealthHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "MemoRegen backend fonctionne !")
}

// Debug writes a sentinel document to the store and reports the outcome.
// A store failure is reported, never fatal.
func (h *HealthHandler) Debug(c echo.Context) error {
	// Store errors can carry transport detail (hosts, URIs); they go to the
	// log only, never into the response body.
	if err := h.repo.WriteSentinel(c.Request().Context()); err != nil {
		h.logger.Error("Sentinel write failed", zap.Error(err))
		return c.String(http.StatusInternalServerError, "store check failed")
	}

	return c.String(http.StatusOK, "store check ok")
}
