package wordlist

import (
	"fmt"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/store"
)

func loadSQLite(path string) ([]domain.WordEntry, error) {
	s, err := store.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.Words()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

// DBHasWords reports whether the database at path exists and holds at least
// one entry.
func DBHasWords(path string) bool {
	s, err := store.OpenReadOnly(path)
	if err != nil {
		return false
	}
	defer func() { _ = s.Close() }()

	n, err := s.CountWords()
	return err == nil && n > 0
}
