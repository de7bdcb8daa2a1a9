// Package main implements the entry point for the Taskdeck API
// server, a JSON HTTP service for per-user task tracking with JWT
// authentication and a TTL cache in front of task listings.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/platform/logger"
)

func main() {
	// A missing .env file is fine; real deployments configure through
	// the environment directly.
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

// run loads configuration, wires the application together and blocks
// until the server shuts down.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"task_cache_ttl_seconds", cfg.Cache.TaskTTLSeconds)

	if cfg.UsesInsecureDefaultSecret() {
		appLogger.Warn("Using the built-in JWT secret; set TASKDECK_AUTH_JWT_SECRET before deploying")
	}

	ctx := context.Background()

	db, err := setupDatabase(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDatabase(db, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	slog.Info("Application initialized successfully")
	return app.Run(ctx)
}
