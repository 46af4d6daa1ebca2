package generation

import "errors"

// Common errors returned by generator implementations.
var (
	// ErrInvalidConfig is returned when the generator configuration is
	// invalid, such as a missing API key at construction.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyGeneration is returned when the model produced an empty or
	// whitespace-only result. It is treated as transient and retried.
	ErrEmptyGeneration = errors.New("generated content is empty")

	// ErrTransientFailure wraps temporary remote errors that may resolve
	// on retry.
	ErrTransientFailure = errors.New("transient error during text generation")

	// ErrGenerationFailed is returned once all retry attempts have been
	// exhausted. Content orchestrators catch this and substitute fallbacks.
	ErrGenerationFailed = errors.New("failed to generate text")
)
