package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the service.
type Config struct {
	ServiceName       string        `env:"SERVICE_NAME" envDefault:"hackmate-backend"`
	Environment       string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort          int           `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowedOrigin string        `env:"CORS_ALLOWED_ORIGIN" envDefault:"http://127.0.0.1:5173"`
	SessionSecret     string        `env:"SESSION_SECRET" envDefault:"hackmate-dev-secret"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	// AllowDefaultUser falls back to the first seeded user when a request carries no session.
	AllowDefaultUser bool   `env:"ALLOW_DEFAULT_USER" envDefault:"true"`
	ValkeyAddr       string `env:"VALKEY_ADDR" envDefault:""`
}

// Load parses environment variables into Config.
// Values already in the environment win over .env files loaded by the caller.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.SessionSecret) == "" {
		return nil, fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	if cfg.Environment == "production" && cfg.AllowDefaultUser {
		return nil, fmt.Errorf("ALLOW_DEFAULT_USER cannot be enabled in production")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
