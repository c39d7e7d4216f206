package theme

import (
	"fmt"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/ui/style"
)

func Toggle(args []string, flags *dispatchers.ParsedFlags) error {
	return toggle(args, flags, DefaultDeps())
}

func toggle(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	next, err := deps.controller().Toggle()
	if err != nil {
		return fmt.Errorf("save theme: %w", err)
	}

	_, _ = deps.Printf("theme set to %s\n", style.Success(next.String()))
	return nil
}
