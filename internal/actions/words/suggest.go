package words

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/suggest"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/usage"
)

// Suggest prints the prefix matches for the argument in list order.
func Suggest(args []string, flags *dispatchers.ParsedFlags) error {
	return suggestWords(context.Background(), args, flags, DefaultDeps())
}

func suggestWords(ctx context.Context, args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("prefix")
	}

	input := strings.Join(args, " ")
	raw := flags.String("--limit", strconv.Itoa(suggest.MaxSuggestions))
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit < 1 || limit > suggest.MaxSuggestions {
		return usage.InvalidValue("--limit", raw, "1-10")
	}

	entries, err := deps.Load(ctx, deps.source(flags))
	if err != nil {
		return err
	}

	matches := suggest.NewIndex(entries).Prefix(strings.ToLower(strings.TrimSpace(input)), limit)

	if flags.Has("--json") {
		if matches == nil {
			matches = []domain.WordEntry{}
		}
		out, err := json.MarshalIndent(matches, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(out))
		return nil
	}

	if len(matches) == 0 {
		_, _ = deps.Println(style.Muted("No results found"))
		return nil
	}

	for _, e := range matches {
		seg, _ := suggest.Highlight(e.Word, input)
		_, _ = deps.Printf("%s%s%s %s\n", seg.Before, style.Match(seg.Match), seg.After, style.Muted("("+e.Pos+")"))
	}
	return nil
}
