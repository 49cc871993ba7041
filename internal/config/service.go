package config

type ServiceConfig struct {
	Name                string `yaml:"name"`
	Environment         string `yaml:"environment"`
	ClientURL           string `yaml:"client_url" validate:"required,url"`
	StripeSecretKey     string `yaml:"stripe_secret_key" validate:"required"`
	StripeWebhookSecret string `yaml:"stripe_webhook_secret" validate:"required"`
	StripePriceID       string `yaml:"stripe_price_id" validate:"required"`
}
