// Package generation provides the boundary between the application core and
// external AI/LLM services used for text generation. It defines the generator
// interface, the per-model sampling configuration and its registry, and the
// error taxonomy shared by generator implementations and their callers.
package generation
