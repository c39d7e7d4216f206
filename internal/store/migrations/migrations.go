// Package migrations applies the embedded word database schema.
package migrations

import (
	"cmp"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// ErrSchemaAhead is returned when a database was written by a newer bmd.
var ErrSchemaAhead = errors.New("word database schema is newer than this bmd")

// Migration is one embedded sql/NN_description.sql file.
type Migration struct {
	Version     int
	Description string
	SQL         string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Description)
}

const versionTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations ordered by version.
func Load() ([]Migration, error) {
	files, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(files))
	for _, file := range files {
		m, err := readMigration(file)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("migrations %s and %s share version %d", all[i-1], all[i], all[i].Version)
		}
	}
	return all, nil
}

func readMigration(file string) (Migration, error) {
	base := strings.TrimSuffix(strings.TrimPrefix(file, "sql/"), ".sql")
	num, desc, ok := strings.Cut(base, "_")
	if !ok || desc == "" {
		return Migration{}, fmt.Errorf("migration %s: name must look like NN_description.sql", file)
	}
	version, err := strconv.Atoi(num)
	if err != nil || version <= 0 {
		return Migration{}, fmt.Errorf("migration %s: bad version %q", file, num)
	}

	body, err := sqlFiles.ReadFile(file)
	if err != nil {
		return Migration{}, fmt.Errorf("read %s: %w", file, err)
	}
	return Migration{Version: version, Description: desc, SQL: string(body)}, nil
}

// Latest returns the highest embedded version.
func Latest() (int, error) {
	all, err := Load()
	if err != nil || len(all) == 0 {
		return 0, err
	}
	return all[len(all)-1].Version, nil
}

// Run brings db up to the latest schema. Each migration commits on its own,
// so a failure leaves every earlier step applied.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}
	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
	}
	return nil
}

// Pending returns the migrations db has not applied yet. It fails with
// ErrSchemaAhead when db records a version this binary does not know.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	current, err := CurrentVersion(db)
	if err != nil {
		return nil, err
	}

	if len(all) > 0 && current > all[len(all)-1].Version {
		return nil, fmt.Errorf("%w (database v%d, known v%d)", ErrSchemaAhead, current, all[len(all)-1].Version)
	}

	idx, _ := slices.BinarySearchFunc(all, current+1, func(m Migration, v int) int {
		return cmp.Compare(m.Version, v)
	})
	return all[idx:], nil
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func CurrentVersion(db *sql.DB) (int, error) {
	if _, err := db.Exec(versionTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(version.Int64), nil
}

func apply(db *sql.DB, m Migration) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err = tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Description,
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}
