// Package config loads the runtime configuration from the environment.
// A .env file is picked up automatically when present.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port         string `koanf:"port"`
	DatabaseURL  string `koanf:"database_url" validate:"required"`
	AllowOrigins string `koanf:"allow_origins"`
	LogLevel     string `koanf:"log_level"`
}

// Load reads APP_-prefixed environment variables into a Config and fails
// fast when DATABASE_URL is missing.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("APP_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "APP_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		Port: "8080",
		// dev defaults, comma separated
		AllowOrigins: "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000",
		LogLevel:     "info",
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
