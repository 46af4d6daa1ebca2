package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anatolism/meditation-api-backend/internal/api"
	"github.com/anatolism/meditation-api-backend/internal/config"
	"github.com/anatolism/meditation-api-backend/internal/platform/gemini"
	"github.com/anatolism/meditation-api-backend/internal/platform/phrasecsv"
	"github.com/anatolism/meditation-api-backend/internal/platform/sessionfs"
	"github.com/anatolism/meditation-api-backend/internal/platform/voice"
	"github.com/anatolism/meditation-api-backend/internal/service"
	"github.com/anatolism/meditation-api-backend/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Stores (using interfaces for proper abstraction)
	phraseStore  store.PhraseStore
	sessionStore store.SessionStore

	// Service interfaces
	introductionService service.IntroductionService
	plannerService      service.PlannerService

	// Optional TTS path; nil when voice is disabled.
	synthesizer api.AudioSynthesizer
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the configuration and logger that must be
// established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Create the LLM generator against the static model registry.
	registry := gemini.NewModelRegistry()
	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
		registry,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully",
		"model", generator.Model(),
		"max_retries", cfg.LLM.MaxRetries,
		"retry_delay", time.Duration(cfg.LLM.RetryDelaySeconds)*time.Second)

	// Initialize stores
	app.phraseStore, err = phrasecsv.New(cfg.Phrase.CSVPath, logger.With("component", "phrase_store"))
	if err != nil {
		return nil, fmt.Errorf("failed to load phrase catalog: %w", err)
	}

	app.sessionStore, err = sessionfs.New(
		cfg.Session.AudioRoot,
		cfg.Session.KeepRecent,
		logger.With("component", "session_store"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize introduction service
	app.introductionService, err = service.NewIntroductionService(generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create introduction service: %w", err)
	}

	// Initialize planner service
	app.plannerService, err = service.NewPlannerService(app.phraseStore, generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create planner service: %w", err)
	}

	// Initialize the optional TTS synthesizer. When disabled the
	// introduction endpoint simply returns an empty audio URL.
	if cfg.Voice.Enabled {
		app.synthesizer, err = voice.New(
			ctx,
			logger.With("component", "voice_synthesizer"),
			cfg.LLM.GeminiAPIKey,
			cfg.Voice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize voice synthesizer: %w", err)
		}
		logger.Info("Voice synthesis enabled",
			"model", cfg.Voice.ModelName,
			"voice", cfg.Voice.VoiceName)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
