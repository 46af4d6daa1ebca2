// Package phrasecsv implements the store.PhraseStore interface over a flat
// CSV phrase catalog. The file is read once at construction; an unreadable
// or empty catalog fails the constructor rather than a later request.
package phrasecsv

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/anatolism/meditation-api-backend/internal/store"
)

// Store is a CSV-backed phrase catalog. The first column of every row is the
// integer phrase id; remaining columns (phrase text, audio path) are opaque
// to this service.
type Store struct {
	path string
	ids  []int
}

// New loads the catalog at path. A header row is tolerated: the first row is
// skipped when its first field is not numeric.
func New(path string, logger *slog.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open phrase catalog %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("failed to close phrase catalog", "path", path, "error", cerr)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may carry differing column counts

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse phrase catalog %s: %w", path, err)
	}

	ids := make([]int, 0, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(record[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("invalid phrase id %q at row %d in %s", record[0], i+1, path)
		}
		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s", store.ErrEmptyCatalog, path)
	}

	logger.Info("loaded phrase catalog", "path", path, "phrases", len(ids))

	return &Store{path: path, ids: ids}, nil
}

// ListIDs returns the catalog's phrase ids in file order. The catalog is
// currently type-agnostic: every practice type sees the full id list.
func (s *Store) ListIDs(practiceType string) []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

var _ store.PhraseStore = (*Store)(nil)
