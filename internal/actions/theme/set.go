package theme

import (
	"fmt"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return setTheme(args, flags, DefaultDeps())
}

func setTheme(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("theme")
	}

	t, ok := theme.Parse(args[0])
	if !ok {
		return usage.InvalidValue("theme", args[0], theme.Light.String(), theme.Dark.String())
	}

	if err := deps.controller().Set(t); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(t.String()))
	return nil
}
