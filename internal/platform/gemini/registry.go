package gemini

import "github.com/anatolism/meditation-api-backend/internal/generation"

// DefaultModelName is the registry's default generation model.
const DefaultModelName = "gemini-2.5-flash"

// NewModelRegistry builds the process-wide model registry seeded with the
// built-in Gemini entries. Callers may register additional models at runtime;
// the built-in set is never removed.
func NewModelRegistry() *generation.ModelRegistry {
	registry, err := generation.NewModelRegistry(DefaultModelName, map[string]generation.ModelConfig{
		"gemini-2.5-flash": {
			Temperature:     0.5,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 8000,
		},
		"gemini-1.0-pro-latest": {
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 8000,
		},
		"gemini-2.5-pro": {
			Temperature:     0.9,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 8000,
		},
	})
	if err != nil {
		// The seed table above is static; a failure here is a programming error.
		panic(err)
	}
	return registry
}
