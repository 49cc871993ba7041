package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

// SMTPConfig holds SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPClient sends mail through an SMTP relay
type SMTPClient struct {
	config SMTPConfig
	logger *zap.Logger
}

// NewSMTPClient creates a new SMTP client
func NewSMTPClient(cfg SMTPConfig, logger *zap.Logger) *SMTPClient {
	return &SMTPClient{
		config: cfg,
		logger: logger,
	}
}

// SendMail sends an HTML mail to a single recipient. The send runs in its
// own goroutine so a hung relay cannot outlive the caller's context.
func (m *SMTPClient) SendMail(ctx context.Context, to, subject, body string) error {
	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	message := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.config.From, to, subject) +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"utf-8\"\r\n\r\n" +
		body

	errCh := make(chan error, 1)
	go func() {
		errCh <- smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(message))
	}()

	select {
	case err := <-errCh:
		if err != nil {
			m.logger.Error("Failed to send mail",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err),
			)
			return fmt.Errorf("smtp send to %s: %w", to, err)
		}
		m.logger.Info("Mail sent",
			zap.String("to", to),
			zap.String("relay", addr),
		)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s: %w", to, ctx.Err())
	}
}
