package store

// PhraseStore provides access to the catalog of guided-meditation phrases.
type PhraseStore interface {
	// ListIDs returns the ordered phrase identifiers available for the given
	// practice type.
	ListIDs(practiceType string) []int
}
