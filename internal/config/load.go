// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. TASKDECK_DATABASE_URL, TASKDECK_SERVER_PORT.
const envPrefix = "TASKDECK"

// Load reads configuration from environment variables, applies
// defaults, and validates the result. The database URL has no default:
// a missing TASKDECK_DATABASE_URL is a validation error, which callers
// treat as fatal. The JWT secret defaults to a fixed, insecure value.
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. database.url deliberately has none.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.jwt_secret", InsecureDefaultJWTSecret)
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("cache.task_ttl_seconds", 600)

	// AutomaticEnv alone does not surface env-only keys to Unmarshal;
	// keys without defaults must be bound explicitly.
	if err := v.BindEnv("database.url"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
