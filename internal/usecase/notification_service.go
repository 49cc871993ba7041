package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultLocale is used when a checkout session carries no locale or one we
// have no template for.
const DefaultLocale = "fr"

// MessageTemplate is a localized confirmation message
type MessageTemplate struct {
	Subject string
	Body    string
}

var confirmationTemplates = map[string]MessageTemplate{
	"fr": {
		Subject: "Bienvenue dans MemoRegen Premium !",
		Body: "<p>Merci pour votre abonnement !</p>" +
			"<p>Votre accès premium MemoRegen est maintenant actif. " +
			"Toutes les fonctionnalités premium sont débloquées.</p>",
	},
	"en": {
		Subject: "Welcome to MemoRegen Premium!",
		Body: "<p>Thank you for subscribing!</p>" +
			"<p>Your MemoRegen premium access is now active. " +
			"All premium features are unlocked.</p>",
	},
}

// NormalizeLocale maps a session locale onto a supported template locale.
// Stripe reports regional variants like "en-GB"; the lowered primary subtag
// picks the template, with DefaultLocale for anything unsupported.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(locale)
	if i := strings.IndexAny(locale, "-_"); i >= 0 {
		locale = locale[:i]
	}
	if _, ok := confirmationTemplates[locale]; ok {
		return locale
	}
	return DefaultLocale
}

// Mailer delivers a single message through the transport relay
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}

// NotificationService selects the localized confirmation template and
// dispatches it. Callers treat the send as best-effort; this service only
// reports the outcome.
type NotificationService struct {
	mailer  Mailer
	timeout time.Duration
	logger  *zap.Logger
}

// NewNotificationService creates a new notification service. Every send is
// bounded by the given timeout so a hung relay cannot stall the webhook path.
func NewNotificationService(mailer Mailer, timeout time.Duration, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		mailer:  mailer,
		timeout: timeout,
		logger:  logger,
	}
}

// SendConfirmation sends the subscription confirmation for the given locale
func (s *NotificationService) SendConfirmation(ctx context.Context, email, locale string) error {
	template := confirmationTemplates[NormalizeLocale(locale)]

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.mailer.SendMail(ctx, email, template.Subject, template.Body); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", email, err)
	}

	s.logger.Info("Confirmation mail dispatched",
		zap.String("email", email),
		zap.String("locale", NormalizeLocale(locale)),
	)

	return nil
}
