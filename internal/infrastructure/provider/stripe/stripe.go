package stripe

import (
	"context"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"go.uber.org/zap"

	"github.com/YATI3/memoregen-backend/internal/domain/provider"
)

// StripeProvider implements the CheckoutProvider interface for Stripe
type StripeProvider struct {
	priceID    string
	successURL string
	cancelURL  string
	logger     *zap.Logger
}

// NewStripeProvider creates a new Stripe checkout provider. The price and
// redirect URLs are server-side constants; callers supply nothing.
func NewStripeProvider(priceID, clientURL string, logger *zap.Logger) *StripeProvider {
	return &StripeProvider{
		priceID:    priceID,
		successURL: clientURL + "/success",
		cancelURL:  clientURL + "/cancel",
		logger:     logger,
	}
}

// GetProviderName returns the provider name
func (s *StripeProvider) GetProviderName() string {
	return "stripe"
}

// CreateCheckoutSession creates a subscription-mode checkout session with a
// single line item at the configured price. Stripe's error details stay in
// the log; callers only see a ProviderError.
func (s *StripeProvider) CreateCheckoutSession(ctx context.Context) (*provider.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{
			Context: ctx,
		},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		s.logger.Error("Error creating checkout session",
			zap.String("price_id", s.priceID),
			zap.Error(err),
		)
		return nil, &provider.ProviderError{
			Code:    "CHECKOUT_SESSION_FAILED",
			Message: "unable to create checkout session",
		}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.ID),
	)

	return &provider.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}
