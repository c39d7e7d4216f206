package words

import (
	"os"
	"strconv"
	"strings"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/format"
	"github.com/bmdict/cli/internal/ui/style"
)

// Status prints which word list would be used and what the database holds.
func Status(args []string, flags *dispatchers.ParsedFlags) error {
	return status(args, flags, DefaultDeps())
}

func status(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	src := deps.source(flags)
	dbPath := deps.DBPath()

	var b strings.Builder
	b.WriteString(style.Header("Word list") + "\n")
	b.WriteString("  source:   " + src + " " + style.Muted("("+sourceOrigin(flags, deps)+")") + "\n")

	b.WriteString("\n" + style.Header("Database") + "\n")
	b.WriteString("  path:     " + dbPath + "\n")

	if _, err := os.Stat(dbPath); err != nil {
		b.WriteString("  " + style.Muted("not created; run 'bmd import <source>'") + "\n")
		_, _ = deps.Printf("%s", b.String())
		return nil
	}

	repo, err := deps.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = repo.Close() }()

	n, err := repo.CountWords()
	if err != nil {
		return err
	}
	b.WriteString("  words:    " + strconv.Itoa(n) + "\n")

	rec, ok, err := repo.LastImport()
	if err != nil {
		return err
	}
	if ok {
		when := format.Timestamp(rec.ImportedAt, format.LayoutsFrom(deps.ConfigGet), deps.Now())
		b.WriteString("  imported: " + when + " from " + rec.Source + "\n")
	} else {
		b.WriteString("  imported: " + style.Muted("never") + "\n")
	}

	_, _ = deps.Printf("%s", b.String())
	return nil
}

func sourceOrigin(flags *dispatchers.ParsedFlags, deps Deps) string {
	if strings.TrimSpace(flags.String("--words", "")) != "" {
		return "--words"
	}
	if strings.TrimSpace(deps.Getenv("BMD_WORDS")) != "" {
		return "BMD_WORDS"
	}
	if v, _ := deps.ConfigGet("words"); strings.TrimSpace(v) != "" {
		return "config"
	}
	if deps.DBHasWords(deps.DBPath()) {
		return "database"
	}
	return "default"
}
