package theme

import (
	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
)

// Show prints the active theme and where it came from.
func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

func show(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	store := theme.NewConfigStore(deps.Config)

	current := theme.Resolve(store, deps.SystemDark)
	source := "default"
	if _, ok := store.Load(); ok {
		source = "config"
	} else if current == theme.Dark {
		source = "terminal background"
	}

	_, _ = deps.Printf("%s %s\n", style.Success(current.String()), style.Muted("("+source+")"))
	return nil
}
