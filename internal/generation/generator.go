package generation

import "context"

// TextGenerator defines the interface for producing text from a prompt.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type TextGenerator interface {
	// GenerateText produces text for the given prompt.
	//
	// Implementations must either return non-empty, whitespace-trimmed text
	// or an error; a blank result is never a success. Errors returned after
	// internal retries are exhausted wrap ErrGenerationFailed.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
