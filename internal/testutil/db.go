package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/store"
	"github.com/bmdict/cli/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")

	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db), "failed to run migrations")

	return db
}

// NewTestStore returns a Store on a fresh in-memory database.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedWords replaces the stored list with entries.
func SeedWords(t *testing.T, s *store.Store, entries []domain.WordEntry) {
	t.Helper()
	_, err := s.ReplaceWords("seed", entries)
	require.NoError(t, err, "failed to seed words")
}

// SeedFile writes entries to a new SQLite file under t.TempDir and returns
// its path.
func SeedFile(t *testing.T, name string, entries []domain.WordEntry) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	s, err := store.New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	SeedWords(t, s, entries)
	return path
}
