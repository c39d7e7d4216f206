package words

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/usage"
	"github.com/bmdict/cli/internal/wordlist"
)

// Export writes the resolved word list to dest. The format follows dest's
// extension: .json, .msgpack/.mpk or .xlsx.
func Export(args []string, flags *dispatchers.ParsedFlags) error {
	return exportWords(context.Background(), args, flags, DefaultDeps())
}

func exportWords(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("destination")
	}
	dest := args[0]

	write, err := exporterFor(dest)
	if err != nil {
		return err
	}

	src := deps.source(flags)
	entries, err := deps.Load(ctx, src)
	if err != nil {
		return err
	}

	if err := write(dest, entries); err != nil {
		return fmt.Errorf("export %s: %w", dest, err)
	}

	deps.Logger.Info("export: %d words from %s to %s", len(entries), src, dest)
	_, _ = deps.Printf("exported %d words to %s\n", len(entries), dest)
	return nil
}

type exporter func(path string, entries []domain.WordEntry) error

func exporterFor(dest string) (exporter, error) {
	switch strings.ToLower(filepath.Ext(dest)) {
	case ".json":
		return writeJSON, nil
	case ".msgpack", ".mpk":
		return writeMsgpack, nil
	case ".xlsx":
		return wordlist.WriteXLSX, nil
	}
	return nil, usage.InvalidValue("destination", dest, ".json", ".msgpack", ".mpk", ".xlsx")
}

func writeJSON(path string, entries []domain.WordEntry) error {
	if entries == nil {
		entries = []domain.WordEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

func writeMsgpack(path string, entries []domain.WordEntry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return wordlist.EncodeMsgpack(f, entries)
}
