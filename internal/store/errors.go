package store

import "errors"

// Common errors returned by store implementations.
var (
	// ErrEmptyCatalog indicates the phrase catalog contained no usable rows.
	ErrEmptyCatalog = errors.New("phrase catalog is empty")

	// ErrSessionNotFound indicates the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
)
