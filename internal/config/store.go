package config

import "time"

// StoreConfig holds document store connection configuration
type StoreConfig struct {
	URI               string `yaml:"uri" validate:"required"`
	Database          string `yaml:"database" validate:"required"`
	PremiumCollection string `yaml:"premium_collection" validate:"required"`
	Username          string `yaml:"username"`
	Password          string `yaml:"password"`

	// TimeoutSeconds bounds every store operation
	TimeoutSeconds int `yaml:"timeout_seconds" validate:"required,min=1"`
}

// Timeout returns the per-operation store timeout
func (c *StoreConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
