package config

import "time"

// EmailConfig holds SMTP relay configuration for confirmation mail
type EmailConfig struct {
	SMTPHost string `yaml:"smtp_host" validate:"required"`
	SMTPPort int    `yaml:"smtp_port" validate:"required,min=1,max=65535"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass"`
	Sender   string `yaml:"sender" validate:"required,email"`

	// TimeoutSeconds bounds a single send attempt
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"required,min=1"`
}

// Timeout returns the per-send timeout
func (c *EmailConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
