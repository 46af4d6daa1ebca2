// Package gemini implements the generation.TextGenerator interface using
// Google's Gemini API. It owns the remote client lifecycle, applies the
// per-model sampling configuration resolved from the model registry, and
// wraps every remote call in the application's fixed-delay retry policy.
package gemini
