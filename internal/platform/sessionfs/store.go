// Package sessionfs implements the store.SessionStore interface on the local
// filesystem. Each session gets its own directory under a configured root;
// creation prunes old sessions down to a retention bound.
package sessionfs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/anatolism/meditation-api-backend/internal/store"
	"github.com/google/uuid"
)

// Store keeps session working directories under root, retaining only the
// keepRecent most recent ones.
type Store struct {
	root       string
	keepRecent int
	logger     *slog.Logger
}

// New creates the root directory if needed and returns the store.
func New(root string, keepRecent int, logger *slog.Logger) (*Store, error) {
	if keepRecent < 1 {
		return nil, fmt.Errorf("keepRecent must be positive, got %d", keepRecent)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create session root %s: %w", root, err)
	}
	return &Store{root: root, keepRecent: keepRecent, logger: logger}, nil
}

// Create makes a fresh session directory and returns its identifier.
// Identifiers embed the creation timestamp so lexicographic order matches
// chronological order, which the retention pass relies on; a uuid suffix
// keeps same-second sessions distinct.
func (s *Store) Create() (string, error) {
	id := fmt.Sprintf("session_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
	if err := os.MkdirAll(filepath.Join(s.root, id), 0o755); err != nil {
		return "", fmt.Errorf("failed to create session directory: %w", err)
	}

	s.cleanup()

	return id, nil
}

// Dir resolves a session identifier to its directory path.
func (s *Store) Dir(sessionID string) (string, error) {
	// Identifiers never contain separators; reject traversal attempts.
	if sessionID == "" || strings.ContainsAny(sessionID, `/\`) || sessionID == ".." {
		return "", store.ErrSessionNotFound
	}

	path := filepath.Join(s.root, sessionID)
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", store.ErrSessionNotFound
	}
	return path, nil
}

// cleanup removes all but the keepRecent most recent session directories.
// Failures are logged and ignored: retention is housekeeping, not part of
// the request contract.
func (s *Store) cleanup() {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Warn("failed to list session root for cleanup", "root", s.root, "error", err)
		return
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), "session_") {
			sessions = append(sessions, entry.Name())
		}
	}

	// Most recent first.
	sort.Sort(sort.Reverse(sort.StringSlice(sessions)))

	for _, old := range sessions[min(len(sessions), s.keepRecent):] {
		if err := os.RemoveAll(filepath.Join(s.root, old)); err != nil {
			s.logger.Warn("failed to remove old session", "session_id", old, "error", err)
			continue
		}
		s.logger.Info("cleaned up old session", "session_id", old)
	}
}

var _ store.SessionStore = (*Store)(nil)
