package store

// SessionStore manages per-session working directories used for generated
// audio. Implementations enforce a retention bound on old sessions.
type SessionStore interface {
	// Create makes a fresh session directory and returns its identifier.
	Create() (string, error)

	// Dir resolves a session identifier to its directory path.
	// Returns ErrSessionNotFound when no such session exists.
	Dir(sessionID string) (string, error)
}
