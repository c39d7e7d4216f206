package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/store/migrations"
)

// Store keeps the imported word list in SQLite.
// It implements domain.WordRepository.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	log.Debug("store: opening database at %s", path)

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// ErrNotWordDatabase is returned by OpenReadOnly for a SQLite file that does
// not carry the imports and words tables.
var ErrNotWordDatabase = errors.New("not a bmd word database")

// OpenReadOnly opens an existing word database for reading. Nothing is created
// or migrated, so pointing it at an unrelated SQLite file leaves that file as
// it was.
func OpenReadOnly(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	var tables int
	err = db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('imports', 'words')",
	).Scan(&tables)
	if err != nil {
		CloseDB(db)
		return nil, fmt.Errorf("inspect schema: %w", err)
	}
	if tables != 2 {
		CloseDB(db)
		return nil, fmt.Errorf("%s: %w", path, ErrNotWordDatabase)
	}

	return &Store{db: db, path: path}, nil
}

// NewWithDB wraps an already migrated connection.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// CloseDB closes db and reports a failure on stderr. Meant for defer.
func CloseDB(db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "store: close database: %v\n", err)
	}
}

func configureSQLite(db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

func setDBPermissions(path string) {
	if path == ":memory:" || path == "" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// ReplaceWords swaps the stored list for entries in a single transaction and
// records the import. Entry order is kept in the position column.
func (s *Store) ReplaceWords(source string, entries []domain.WordEntry) (domain.ImportRecord, error) {
	rec := domain.ImportRecord{
		ID:         uuid.NewString(),
		Source:     source,
		WordCount:  len(entries),
		ImportedAt: time.Now().UTC().Format(time.RFC3339),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return domain.ImportRecord{}, fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		return domain.ImportRecord{}, fmt.Errorf("clear words: %w", err)
	}

	_, err = tx.Exec(
		"INSERT INTO imports (id, source, word_count, imported_at) VALUES (?, ?, ?, ?)",
		rec.ID, rec.Source, rec.WordCount, rec.ImportedAt,
	)
	if err != nil {
		return domain.ImportRecord{}, fmt.Errorf("record import: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO words (position, word, pos, definition, import_id) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return domain.ImportRecord{}, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, e := range entries {
		if _, err := stmt.Exec(i, e.Word, e.Pos, e.Definition, rec.ID); err != nil {
			return domain.ImportRecord{}, fmt.Errorf("insert %q: %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.ImportRecord{}, fmt.Errorf("commit: %w", err)
	}
	committed = true

	log.Info("store: imported %d words from %s (import %s)", rec.WordCount, source, rec.ID)
	return rec, nil
}

// Words returns every stored entry in import order.
func (s *Store) Words() ([]domain.WordEntry, error) {
	rows, err := s.db.Query("SELECT word, pos, definition FROM words ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.WordEntry
	for rows.Next() {
		var e domain.WordEntry
		if err := rows.Scan(&e.Word, &e.Pos, &e.Definition); err != nil {
			return nil, fmt.Errorf("scan word: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) CountWords() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import. The bool is false when nothing
// has been imported yet.
func (s *Store) LastImport() (domain.ImportRecord, bool, error) {
	var rec domain.ImportRecord
	err := s.db.QueryRow(
		`SELECT id, source, word_count, imported_at
		 FROM imports
		 ORDER BY imported_at DESC, rowid DESC
		 LIMIT 1`,
	).Scan(&rec.ID, &rec.Source, &rec.WordCount, &rec.ImportedAt)
	if err == sql.ErrNoRows {
		return domain.ImportRecord{}, false, nil
	}
	if err != nil {
		return domain.ImportRecord{}, false, fmt.Errorf("last import: %w", err)
	}
	return rec, true, nil
}

var _ domain.WordRepository = (*Store)(nil)
