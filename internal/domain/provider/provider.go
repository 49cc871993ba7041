package provider

import "context"

// CheckoutProvider defines the interface for hosted checkout providers (Stripe, etc.)
type CheckoutProvider interface {
	// CreateCheckoutSession creates a hosted subscription checkout session
	// and returns its redirect URL
	CreateCheckoutSession(ctx context.Context) (*CheckoutSession, error)

	// GetProviderName returns the provider name
	GetProviderName() string
}

// CheckoutSession holds the only provider state this system ever sees: the
// session id and the URL the client is redirected to. It is never persisted.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ProviderError represents a provider-specific error
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	return e.Code + ": " + e.Message
}
