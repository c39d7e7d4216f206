package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
)

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	current := theme.Resolve(theme.NewConfigStore(deps.Config), deps.SystemDark)

	_, _ = deps.Println("Available themes (* = current)")
	_, _ = deps.Println()

	for _, t := range theme.All {
		marker := "  "
		if t == current {
			marker = style.Success("* ")
		}
		_, _ = deps.Printf("%s%-8s %s\n", marker, t, renderColorPreview(deps.Themes[t.String()]))
	}

	_, _ = deps.Println()
	_, _ = deps.Println("Use 'bmd theme set <light|dark>' or 'bmd theme toggle' to change")
	return nil
}

// renderColorPreview returns colored text samples for a palette.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted ", cfg.Muted) +
		colorize("match ", cfg.Match) +
		colorize("active", cfg.UIActive)
}
