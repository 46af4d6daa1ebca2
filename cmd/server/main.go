// Package main implements the entry point for the meditation API server
// which generates personalized session introductions and phrase-sequence
// plans via LLM integration, with optional text-to-speech audio.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/anatolism/meditation-api-backend/internal/config"
	"github.com/anatolism/meditation-api-backend/internal/platform/logger"
	"github.com/joho/godotenv"
)

// main is the entry point for the meditation API server.
// It loads configuration, sets up logging, wires the application
// dependencies and starts the HTTP server.
func main() {
	// Load a local .env file when present; real environments set variables
	// directly and have no .env.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the application logger and any error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model_name", cfg.LLM.ModelName,
		"voice_enabled", cfg.Voice.Enabled)

	return cfg, appLogger, nil
}
