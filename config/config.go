package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"portfolio-backend"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	// Origins allowed to call the API from a browser (the portfolio frontend)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	// Contact form
	ContactOwnerName       string        `env:"CONTACT_OWNER_NAME" envDefault:"Portfolio"`
	ContactEmailTo         string        `env:"CONTACT_EMAIL_TO" envDefault:"hello@example.com"`
	ContactEmailFrom       string        `env:"CONTACT_EMAIL_FROM" envDefault:"noreply@example.com"`
	ContactDispatchDelay   time.Duration `env:"CONTACT_DISPATCH_DELAY" envDefault:"1500ms"`
	ContactDispatchTimeout time.Duration `env:"CONTACT_DISPATCH_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; missing file is fine
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)

	if cfg.ContactDispatchTimeout <= cfg.ContactDispatchDelay {
		log.Printf("WARNING: CONTACT_DISPATCH_TIMEOUT (%s) is not above CONTACT_DISPATCH_DELAY (%s); every submission will time out.",
			cfg.ContactDispatchTimeout, cfg.ContactDispatchDelay)
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

// normalizeOrigins drops blanks and trailing slashes so origin comparison is exact
func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
