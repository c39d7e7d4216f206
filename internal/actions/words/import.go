package words

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/usage"
)

// Import loads a word list from any supported source and replaces the
// contents of the word database with it.
func Import(args []string, flags *dispatchers.ParsedFlags) error {
	return importWords(context.Background(), args, flags, DefaultDeps())
}

func importWords(ctx context.Context, args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("source")
	}
	src := args[0]
	dbPath := deps.DBPath()

	if samePath(src, dbPath) {
		return fmt.Errorf("cannot import the word database into itself: %s", src)
	}

	entries, err := deps.Load(ctx, src)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no words found in %s", src)
	}

	repo, err := deps.OpenStore(dbPath)
	if err != nil {
		return fmt.Errorf("open word database: %w", err)
	}
	defer func() { _ = repo.Close() }()

	rec, err := repo.ReplaceWords(src, entries)
	if err != nil {
		return err
	}

	deps.Logger.Info("import: %d words from %s as %s", rec.WordCount, src, rec.ID)
	_, _ = deps.Printf("imported %d words from %s\n", rec.WordCount, src)
	return nil
}

func samePath(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
