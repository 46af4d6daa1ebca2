package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/anatolism/meditation-api-backend/internal/config"
	"github.com/anatolism/meditation-api-backend/internal/generation"
	"github.com/anatolism/meditation-api-backend/internal/retry"
)

// Generator implements the generation.TextGenerator interface using Google's
// Gemini API. One Generator is bound to one model for its lifetime; the
// model's sampling configuration is resolved from the registry at
// construction and never changes afterwards.
type Generator struct {
	logger *slog.Logger

	// config contains the API key and retry settings.
	config config.LLMConfig

	// model is the bound model name; modelConfig its resolved parameters.
	model       string
	modelConfig generation.ModelConfig

	// policy governs remote attempts with a fixed delay between them.
	policy *retry.Policy

	// mu guards caller, which is re-created lazily when absent.
	mu     sync.Mutex
	caller contentCaller

	// newCaller builds a remote session. A field so tests can stub the SDK.
	newCaller func(ctx context.Context, apiKey string) (contentCaller, error)
}

// NewGenerator creates a Generator bound to cfg.ModelName, or to the
// registry's default model when no name is configured.
//
// The sampling configuration is resolved eagerly and the remote session is
// established eagerly: a missing API key or client failure surfaces here as
// generation.ErrInvalidConfig rather than on the first call.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	registry *generation.ModelRegistry,
) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if registry == nil {
		return nil, fmt.Errorf("%w: model registry cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	model := cfg.ModelName
	if model == "" {
		model = registry.DefaultModel()
	}

	g := &Generator{
		logger:      logger,
		config:      cfg,
		model:       model,
		modelConfig: registry.Resolve(model),
		policy: retry.New(
			cfg.MaxRetries,
			time.Duration(cfg.RetryDelaySeconds)*time.Second,
			logger,
		),
		newCaller: func(ctx context.Context, apiKey string) (contentCaller, error) {
			return newGenaiCaller(ctx, apiKey)
		},
	}

	caller, err := g.newCaller(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidConfig, err)
	}
	g.caller = caller

	logger.InfoContext(ctx, "initialized generation model",
		"model", g.model,
		"temperature", g.modelConfig.Temperature,
		"max_output_tokens", g.modelConfig.MaxOutputTokens)

	return g, nil
}

// Model returns the model name this generator is bound to.
func (g *Generator) Model() string {
	return g.model
}

// GenerateText produces text for the given prompt.
//
// Each attempt re-establishes the remote session if the handle is absent,
// performs one generation call with the bound model configuration, and trims
// the result. A trimmed-empty result counts as a failure and is retried
// exactly like a remote error. Once the retry policy is exhausted the last
// error is returned wrapped in generation.ErrGenerationFailed; the generator
// never swallows a failure.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.logger.InfoContext(ctx, "starting content generation",
		"model", g.model,
		"input_length", len(prompt))

	var result string
	err := g.policy.Execute(ctx, func(ctx context.Context) error {
		caller, err := g.ensureCaller(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		}

		text, err := caller.generate(ctx, g.model, prompt, g.modelConfig)
		if err != nil {
			return fmt.Errorf("%w: %v", generation.ErrTransientFailure, err)
		}

		text = strings.TrimSpace(text)
		if text == "" {
			return generation.ErrEmptyGeneration
		}

		result = text
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "content generation complete",
		"model", g.model,
		"output_length", len(result))

	return result, nil
}

// ensureCaller returns the remote session handle, re-initializing it first
// when absent.
func (g *Generator) ensureCaller(ctx context.Context) (contentCaller, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.caller == nil {
		g.logger.InfoContext(ctx, "re-initializing Gemini session", "model", g.model)
		caller, err := g.newCaller(ctx, g.config.GeminiAPIKey)
		if err != nil {
			return nil, err
		}
		g.caller = caller
	}
	return g.caller, nil
}
