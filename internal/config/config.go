package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Service ServiceConfig `yaml:"service"`
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Email   EmailConfig   `yaml:"email"`
}

// LoadConfig reads the optional YAML file pointed at by CONFIG_PATH, applies
// environment-variable overrides for secrets and the port, fills defaults,
// and validates the result. Any malformed or missing required value is a
// startup failure; handlers never see a half-built config.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath != "" {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %w", err)
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:        "memoregen-backend",
			Environment: "development",
		},
		Server: ServerConfig{
			HTTP: HTTPConfig{
				Port: 3001,
			},
		},
		Store: StoreConfig{
			Database:          "memoregen",
			PremiumCollection: "premium_users",
			TimeoutSeconds:    5,
		},
		Email: EmailConfig{
			SMTPPort:       587,
			TimeoutSeconds: 10,
		},
	}
}

func (c *Config) applyEnvOverrides() error {
	overrideString(&c.Service.ClientURL, "CLIENT_URL")
	overrideString(&c.Service.StripeSecretKey, "STRIPE_SECRET_KEY")
	overrideString(&c.Service.StripeWebhookSecret, "STRIPE_WEBHOOK_SECRET")
	overrideString(&c.Service.StripePriceID, "STRIPE_PRICE_ID")
	overrideString(&c.Store.URI, "MONGODB_URI")
	overrideString(&c.Store.Database, "MONGODB_DATABASE")
	overrideString(&c.Email.SMTPHost, "SMTP_HOST")
	overrideString(&c.Email.SMTPUser, "SMTP_USER")
	overrideString(&c.Email.SMTPPass, "SMTP_PASS")
	overrideString(&c.Email.Sender, "SMTP_SENDER")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.HTTP.Port = port
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		c.Email.SMTPPort = port
	}

	return nil
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
