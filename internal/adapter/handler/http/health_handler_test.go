package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "github.com/YATI3/memoregen-backend/internal/adapter/handler/http"
	domainErrors "github.com/YATI3/memoregen-backend/internal/domain/errors"
)

func TestRoot_Liveness(t *testing.T) {
	handler := handlers.NewHealthHandler(zap.NewNop(), new(MockPremiumRepository))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.NoError(t, handler.Root(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MemoRegen")
}

func TestDebug_SentinelWrite(t *testing.T) {
	t.Run("store reachable", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		repo.On("WriteSentinel", mock.Anything).Return(nil)
		handler := handlers.NewHealthHandler(zap.NewNop(), repo)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/debug", nil)
		rec := httptest.NewRecorder()

		assert.NoError(t, handler.Debug(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
		repo.AssertExpectations(t)
	})

	t.Run("store down reports failure without crashing", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		repo.On("WriteSentinel", mock.Anything).Return(domainErrors.ErrStoreUnavailable)
		handler := handlers.NewHealthHandler(zap.NewNop(), repo)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/debug", nil)
		rec := httptest.NewRecorder()

		assert.NoError(t, handler.Debug(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "store check failed", rec.Body.String())
		assert.NotContains(t, rec.Body.String(), domainErrors.ErrStoreUnavailable.Error())
	})
}
