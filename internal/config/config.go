package config

// InsecureDefaultJWTSecret is the fallback token-signing secret used
// when no secret is configured. It is deliberately insecure: anyone
// reading this source can forge tokens for a deployment running on it.
// Startup logs a prominent warning when it is in effect; production
// deployments must set TASKDECK_AUTH_JWT_SECRET.
const InsecureDefaultJWTSecret = "taskdeck-insecure-default-secret-do-not-deploy"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is mandatory: startup aborts without it.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// CacheConfig contains task-cache settings.
type CacheConfig struct {
	TaskTTLSeconds int `mapstructure:"task_ttl_seconds" validate:"required,gt=0"`
}

// UsesInsecureDefaultSecret reports whether the configuration is
// running on the fallback signing secret.
func (c *Config) UsesInsecureDefaultSecret() bool {
	return c.Auth.JWTSecret == InsecureDefaultJWTSecret
}
