// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Match...) rather than visual.
// When disabled, every helper returns its input unchanged with no ANSI codes.
package style

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu        sync.RWMutex
	enabled   bool
	themeName = ThemeLight
	overrides map[string]string
	colors    = Themes[ThemeLight]

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	matchStyle   lipgloss.Style
)

// Init sets the enabled state and the active palette. NO_COLOR and
// BMD_NO_COLOR disable styling regardless of enable. cfg supplies the
// color_* overrides and may be nil.
func Init(enable bool, theme string, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	overrides = cfg
	enabled = enable && os.Getenv("NO_COLOR") == "" && os.Getenv("BMD_NO_COLOR") == ""
	applyLocked(theme)
}

// Apply switches the active palette, keeping the enabled state and overrides.
func Apply(theme string) {
	mu.Lock()
	defer mu.Unlock()
	applyLocked(theme)
}

func applyLocked(theme string) {
	if !IsValidTheme(theme) {
		theme = ThemeLight
	}
	themeName = theme
	colors = LoadColorConfig(theme, overrides)

	if !enabled {
		return
	}

	// ANSI256 covers both the basic and the extended palette entries.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	matchStyle = makeStyle(colors.Match).Bold(true)
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// CurrentTheme returns the name of the active palette.
func CurrentTheme() string {
	mu.RLock()
	defer mu.RUnlock()
	return themeName
}

// GetColors returns the active palette with overrides applied.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func render(s *lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(&successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(&warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(&errorStyle, text) }

// Info styles text for informational messages.
func Info(text string) string { return render(&infoStyle, text) }

// Header styles section headers and titles.
func Header(text string) string { return render(&headerStyle, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(&mutedStyle, text) }

// Match styles the matched part of a suggestion.
func Match(text string) string { return render(&matchStyle, text) }
