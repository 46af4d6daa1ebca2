package generation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ModelConfig is the named bundle of sampling and length parameters
// controlling one remote generation call. It is copied out of the registry
// on lookup and never mutated afterwards.
type ModelConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"top_p"`
	TopK            int32   `json:"top_k"`
	MaxOutputTokens int32   `json:"max_output_tokens"`
}

// Validation errors for registry operations.
var (
	ErrEmptyModelName   = errors.New("model name cannot be empty")
	ErrInvalidTopK      = errors.New("top_k must be positive")
	ErrInvalidMaxTokens = errors.New("max_output_tokens must be positive")
)

// ModelRegistry maps model names to their generation parameters. It always
// contains a usable default entry: lookups for unknown names resolve to the
// default configuration instead of failing. Entries may be added or
// overwritten at runtime but are never removed.
//
// The registry is safe for concurrent use. It is built once at startup and
// injected into generator construction rather than held as package state.
type ModelRegistry struct {
	mu           sync.RWMutex
	defaultModel string
	configs      map[string]ModelConfig
}

// NewModelRegistry creates a registry seeded with the given entries.
// defaultModel must be one of the seeded names.
func NewModelRegistry(defaultModel string, configs map[string]ModelConfig) (*ModelRegistry, error) {
	if defaultModel == "" {
		return nil, ErrEmptyModelName
	}
	if _, ok := configs[defaultModel]; !ok {
		return nil, fmt.Errorf("default model %q has no registered configuration", defaultModel)
	}

	seeded := make(map[string]ModelConfig, len(configs))
	for name, cfg := range configs {
		if err := validateModelConfig(name, cfg); err != nil {
			return nil, err
		}
		seeded[name] = cfg
	}

	return &ModelRegistry{
		defaultModel: defaultModel,
		configs:      seeded,
	}, nil
}

// DefaultModel returns the name of the registry's default entry.
func (r *ModelRegistry) DefaultModel() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultModel
}

// Resolve returns the configuration registered for name, or the default
// model's configuration when name is absent. It never fails.
func (r *ModelRegistry) Resolve(name string) ModelConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if cfg, ok := r.configs[name]; ok {
		return cfg
	}
	return r.configs[r.defaultModel]
}

// Register inserts or overwrites the entry for name. Non-positive TopK or
// MaxOutputTokens values are rejected.
func (r *ModelRegistry) Register(name string, cfg ModelConfig) error {
	if err := validateModelConfig(name, cfg); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[name] = cfg
	return nil
}

// ListNames returns all currently registered model names in sorted order.
func (r *ModelRegistry) ListNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateModelConfig(name string, cfg ModelConfig) error {
	if name == "" {
		return ErrEmptyModelName
	}
	if cfg.TopK <= 0 {
		return fmt.Errorf("%w: model %q", ErrInvalidTopK, name)
	}
	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: model %q", ErrInvalidMaxTokens, name)
	}
	return nil
}
