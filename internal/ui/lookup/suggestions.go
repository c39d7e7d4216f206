package lookup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bmdict/cli/internal/suggest"
	"github.com/bmdict/cli/internal/ui/style"
)

// listTop is the screen row of the first suggestion: header, status, input
// and a blank line come before it.
const listTop = 4

const noResults = "No results found"

// renderSuggestions draws the list below the search box. Nothing is drawn
// while hidden; an empty visible list shows noResults.
func renderSuggestions(s suggest.State, width int) string {
	if !s.Visible {
		return ""
	}

	colors := style.GetColors()
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))

	if len(s.Matches) == 0 {
		return mutedStyle.Render("  " + noResults)
	}

	matchStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Match))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.UIActive))

	lines := make([]string, len(s.Matches))
	for i, e := range s.Matches {
		seg, _ := suggest.Highlight(e.Word, s.Input)

		prefix := "  "
		wordStyle := lipgloss.NewStyle()
		if i == s.Cursor {
			prefix = activeStyle.Render("> ")
			wordStyle = activeStyle
		}

		row := prefix +
			wordStyle.Render(seg.Before) +
			matchStyle.Render(seg.Match) +
			wordStyle.Render(seg.After) +
			" " + mutedStyle.Render("("+e.Pos+")")

		if width > 0 {
			row = lipgloss.NewStyle().MaxWidth(width).Render(row)
		}
		lines[i] = row
	}
	return strings.Join(lines, "\n")
}

// rowAt maps a screen row to a suggestion index, or -1.
func rowAt(s suggest.State, y int) int {
	if !s.Visible {
		return -1
	}
	i := y - listTop
	if i < 0 || i >= len(s.Matches) {
		return -1
	}
	return i
}
