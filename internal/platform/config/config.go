package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for the service. The database
// settings are deliberately optional: the process must come up without them
// and report the degraded state on /test instead of crashing.
type Config struct {
	Addr        string `envconfig:"APP_ADDR" default:":8080"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"talent-ops-api"`

	DatabaseURL      string        `envconfig:"DATABASE_URL" default:""`
	DatabaseName     string        `envconfig:"DATABASE_NAME" default:""`
	DBConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"5s"`

	RunSeed bool `envconfig:"RUN_SEED" default:"true"`

	MaxBodyBytes       int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`
	RateLimitPerMinute int   `envconfig:"RATE_LIMIT_PER_MINUTE" default:"240"`
	MetricsEnabled     bool  `envconfig:"METRICS_ENABLED" default:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DatabaseConfigured reports whether both connection settings are present.
func (c Config) DatabaseConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("APP_ADDR must not be empty")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.DBConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive")
	}
	if c.DatabaseURL != "" && c.DatabaseName == "" {
		return fmt.Errorf("DATABASE_NAME is required when DATABASE_URL is set")
	}
	return nil
}
