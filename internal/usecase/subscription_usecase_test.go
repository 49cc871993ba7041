package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	domainErrors "github.com/YATI3/memoregen-backend/internal/domain/errors"
	"github.com/YATI3/memoregen-backend/internal/domain/model"
	"github.com/YATI3/memoregen-backend/internal/usecase"
)

// MockPremiumRepository is a mock implementation of repository.PremiumRepository
type MockPremiumRepository struct {
	mock.Mock
}

func (m *MockPremiumRepository) Get(ctx context.Context, email string) (*model.PremiumRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PremiumRecord), args.Error(1)
}

func (m *MockPremiumRepository) UpsertMerge(ctx context.Context, email, locale string, subscribedAt time.Time) error {
	args := m.Called(ctx, email, locale, subscribedAt)
	return args.Error(0)
}

func (m *MockPremiumRepository) WriteSentinel(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockNotifier is a mock implementation of usecase.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(ctx context.Context, email, locale string) error {
	args := m.Called(ctx, email, locale)
	return args.Error(0)
}

func TestSubscriptionUsecase_ActivatePremium(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("writes before dispatching", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		notifier := new(MockNotifier)
		service := usecase.NewSubscriptionUsecase(repo, notifier, logger)

		var writeDone bool
		repo.On("UpsertMerge", ctx, "a@b.com", "en", mock.Anything).
			Run(func(mock.Arguments) { writeDone = true }).
			Return(nil)
		notifier.On("SendConfirmation", ctx, "a@b.com", "en").
			Run(func(mock.Arguments) { assert.True(t, writeDone, "dispatch must follow the durable write") }).
			Return(nil)

		err := service.ActivatePremium(ctx, "a@b.com", "en")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("store failure propagates and skips dispatch", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		notifier := new(MockNotifier)
		service := usecase.NewSubscriptionUsecase(repo, notifier, logger)

		repo.On("UpsertMerge", ctx, "a@b.com", "fr", mock.Anything).
			Return(domainErrors.ErrStoreUnavailable)

		err := service.ActivatePremium(ctx, "a@b.com", "fr")

		assert.ErrorIs(t, err, domainErrors.ErrStoreUnavailable)
		notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dispatch failure is swallowed", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		notifier := new(MockNotifier)
		service := usecase.NewSubscriptionUsecase(repo, notifier, logger)

		repo.On("UpsertMerge", ctx, "a@b.com", "fr", mock.Anything).Return(nil)
		notifier.On("SendConfirmation", ctx, "a@b.com", "fr").Return(assert.AnError)

		err := service.ActivatePremium(ctx, "a@b.com", "fr")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("unrecognized locale normalized to default", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		notifier := new(MockNotifier)
		service := usecase.NewSubscriptionUsecase(repo, notifier, logger)

		repo.On("UpsertMerge", ctx, "a@b.com", "fr", mock.Anything).Return(nil)
		notifier.On("SendConfirmation", ctx, "a@b.com", "fr").Return(nil)

		err := service.ActivatePremium(ctx, "a@b.com", "zz")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestSubscriptionUsecase_CheckPremium(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("existing premium record", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		service := usecase.NewSubscriptionUsecase(repo, new(MockNotifier), logger)

		repo.On("Get", ctx, "a@b.com").Return(&model.PremiumRecord{
			Email:   "a@b.com",
			Premium: true,
			Locale:  "en",
		}, nil)

		premium, err := service.CheckPremium(ctx, "a@b.com")

		assert.NoError(t, err)
		assert.True(t, premium)
	})

	t.Run("unknown identity is false without error", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		service := usecase.NewSubscriptionUsecase(repo, new(MockNotifier), logger)

		repo.On("Get", ctx, "nobody@b.com").Return(nil, domainErrors.ErrRecordNotFound)

		premium, err := service.CheckPremium(ctx, "nobody@b.com")

		assert.NoError(t, err)
		assert.False(t, premium)
	})

	t.Run("store failure is an error", func(t *testing.T) {
		repo := new(MockPremiumRepository)
		service := usecase.NewSubscriptionUsecase(repo, new(MockNotifier), logger)

		repo.On("Get", ctx, "a@b.com").Return(nil, domainErrors.ErrStoreUnavailable)

		_, err := service.CheckPremium(ctx, "a@b.com")

		assert.ErrorIs(t, err, domainErrors.ErrStoreUnavailable)
	})
}
