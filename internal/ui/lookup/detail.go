package lookup

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/ui/style"
)

const (
	closeMarker    = "[x]"
	detailMaxWidth = 64
	detailMinWidth = 24
)

// RenderDetail draws the detail panel for entry, or "" when there is no
// selection.
func RenderDetail(entry *domain.WordEntry, viewWidth int) string {
	if entry == nil {
		return ""
	}

	colors := style.GetColors()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Info))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	closeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error))

	inner := detailInnerWidth(viewWidth)

	title := titleStyle.Render(entry.Word)
	gap := inner - lipgloss.Width(title) - len(closeMarker)
	if gap < 1 {
		gap = 1
	}
	header := title + lipgloss.NewStyle().Width(gap).Render("") + closeStyle.Render(closeMarker)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		labelStyle.Render("Part of Speech: ")+entry.Pos,
		"",
		wordwrap.String(entry.Definition, inner),
		"",
		labelStyle.Render("Esc/x close · y copy"),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.UIActive)).
		Padding(0, 1).
		Width(inner + 2).
		Render(body)
}

// CopyText is what `y` puts on the clipboard.
func CopyText(entry domain.WordEntry) string {
	if entry.Pos == "" {
		return fmt.Sprintf("%s: %s", entry.Word, entry.Definition)
	}
	return fmt.Sprintf("%s (%s): %s", entry.Word, entry.Pos, entry.Definition)
}

func detailInnerWidth(viewWidth int) int {
	w := viewWidth - 8
	if w > detailMaxWidth {
		w = detailMaxWidth
	}
	if w < detailMinWidth {
		w = detailMinWidth
	}
	return w
}

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// centered places a panel of the given size in the middle of the view, the
// way the overlay compositor does.
func centered(viewW, viewH int, panel string) rect {
	w, h := lipgloss.Width(panel), lipgloss.Height(panel)
	return rect{x: (viewW - w) / 2, y: (viewH - h) / 2, w: w, h: h}
}

// closeTarget is the clickable area around the close marker: the right end of
// the first content row, border and padding included.
func closeTarget(panel rect) rect {
	const span = len(closeMarker) + 3
	return rect{x: panel.x + panel.w - span, y: panel.y, w: span, h: 2}
}
