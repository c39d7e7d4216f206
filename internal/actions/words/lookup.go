package words

import (
	"context"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/theme"
	uilookup "github.com/bmdict/cli/internal/ui/lookup"
	"github.com/bmdict/cli/internal/usage"
)

// Lookup opens the interactive search.
func Lookup(args []string, flags *dispatchers.ParsedFlags) error {
	return lookup(context.Background(), args, flags, DefaultDeps())
}

func lookup(ctx context.Context, _ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if !deps.IsTerminal() {
		return usage.NotInteractive("lookup")
	}

	src := deps.source(flags)
	deps.Logger.Debug("lookup: word list source %s", src)

	ctrl := theme.New(
		theme.NewConfigStore(deps.ThemeConfig),
		deps.SystemDark,
		theme.WithApply(deps.ApplyTheme),
		theme.WithLogger(deps.Logger),
	)

	m := uilookup.New(ctx, uilookup.Config{
		Source: src,
		Load: func(ctx context.Context) ([]domain.WordEntry, error) {
			return deps.Load(ctx, src)
		},
		Theme:  ctrl,
		Copy:   deps.Copy,
		Logger: deps.Logger,
	})

	return deps.RunProgram(m)
}
