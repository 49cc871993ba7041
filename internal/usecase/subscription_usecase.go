package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainErrors "github.com/YATI3/memoregen-backend/internal/domain/errors"
	"github.com/YATI3/memoregen-backend/internal/domain/repository"
)

// Notifier sends the post-subscription confirmation message
type Notifier interface {
	SendConfirmation(ctx context.Context, email, locale string) error
}

// SubscriptionUsecase performs the premium state transition for a verified
// checkout completion and answers premium status queries.
type SubscriptionUsecase struct {
	repo     repository.PremiumRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewSubscriptionUsecase creates a new subscription usecase
func NewSubscriptionUsecase(repo repository.PremiumRepository, notifier Notifier, logger *zap.Logger) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// ActivatePremium durably marks the email premium, then dispatches the
// confirmation mail. The store write must commit before the dispatcher runs,
// and a dispatch failure is logged but never returned: once the write is
// durable the caller owes the provider an acknowledgement either way.
func (u *SubscriptionUsecase) ActivatePremium(ctx context.Context, email, locale string) error {
	locale = NormalizeLocale(locale)

	if err := u.repo.UpsertMerge(ctx, email, locale, time.Now().UTC()); err != nil {
		return fmt.Errorf("activate premium: %w", err)
	}

	u.logger.Info("Premium activated",
		zap.String("email", email),
		zap.String("locale", locale),
	)

	if err := u.notifier.SendConfirmation(ctx, email, locale); err != nil {
		u.logger.Error("Confirmation dispatch failed",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return nil
}

// CheckPremium reports whether the email has an active premium record. An
// identity that was never written is simply not premium; a store failure is
// an error, never a silent false.
func (u *SubscriptionUsecase) CheckPremium(ctx context.Context, email string) (bool, error) {
	record, err := u.repo.Get(ctx, email)
	if errors.Is(err, domainErrors.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check premium: %w", err)
	}

	return record.Premium, nil
}
