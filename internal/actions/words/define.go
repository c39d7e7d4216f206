package words

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/suggest"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/usage"
)

const definitionWidth = 78

// Define prints the first entry whose word equals the argument.
func Define(args []string, flags *dispatchers.ParsedFlags) error {
	return define(context.Background(), args, flags, DefaultDeps())
}

func define(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("word")
	}

	query := strings.Join(args, " ")
	entries, err := deps.Load(ctx, deps.source(flags))
	if err != nil {
		return err
	}

	entry, ok := suggest.NewIndex(entries).Exact(strings.ToLower(strings.TrimSpace(query)))
	if !ok {
		return usage.NotFound(query)
	}

	if flags.Has("--json") {
		out, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(out))
		return nil
	}

	_, _ = deps.Printf("%s\n", formatEntry(entry))
	return nil
}

func formatEntry(e domain.WordEntry) string {
	var b strings.Builder
	b.WriteString(style.Header(e.Word))
	if e.Pos != "" {
		b.WriteString(" ")
		b.WriteString(style.Muted("(" + e.Pos + ")"))
	}
	if e.Definition != "" {
		b.WriteString("\n")
		b.WriteString(wordwrap.String(e.Definition, definitionWidth))
	}
	return b.String()
}
