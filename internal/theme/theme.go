// Package theme resolves and toggles the light/dark preference.
//
// The controller never touches the terminal or the config file directly: the
// persisted preference and the system dark signal are injected, and the
// presentation change is an injected hook.
package theme

import (
	"strings"
	"sync"

	"github.com/muesli/termenv"

	"github.com/bmdict/cli/internal/domain"
)

// Theme is one of Light or Dark.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// All lists the themes in display order.
var All = []Theme{Light, Dark}

// Parse accepts "light" or "dark", case-insensitively.
func Parse(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the theme a toggle moves to.
func (t Theme) Opposite() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string { return string(t) }

// PreferenceStore reads and writes the persisted preference.
type PreferenceStore interface {
	// Load returns the stored theme; false when nothing valid is stored.
	Load() (Theme, bool)
	Save(Theme) error
}

// SystemSignal reports whether the environment prefers dark mode.
type SystemSignal func() bool

// Once wraps s so the environment is asked at most once; later calls return
// the first answer.
func Once(s SystemSignal) SystemSignal {
	if s == nil {
		return nil
	}
	return sync.OnceValue(s)
}

// TerminalDark queries the terminal background on first use and caches it for
// the rest of the process.
var TerminalDark = Once(termenv.HasDarkBackground)

// Resolve picks the initial theme: stored preference, then the system dark
// signal, then Light.
func Resolve(store PreferenceStore, system SystemSignal) Theme {
	if store != nil {
		if t, ok := store.Load(); ok {
			return t
		}
	}
	if system != nil && system() {
		return Dark
	}
	return Light
}

// Controller holds the session theme.
type Controller struct {
	current Theme
	store   PreferenceStore
	apply   func(Theme)
	logger  domain.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithApply sets the hook that switches the presentation. It runs once with
// the initial theme and after every change.
func WithApply(fn func(Theme)) Option {
	return func(c *Controller) { c.apply = fn }
}

// WithLogger reports persistence failures to logger.
func WithLogger(logger domain.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New resolves the initial theme and applies it. Resolving does not write to
// the store.
func New(store PreferenceStore, system SystemSignal, opts ...Option) *Controller {
	c := &Controller{store: store}
	for _, opt := range opts {
		opt(c)
	}
	c.current = Resolve(store, system)
	c.runApply()
	return c
}

// Current returns the active theme.
func (c *Controller) Current() Theme {
	return c.current
}

// Toggle switches to the opposite theme, applies it and persists it. The
// in-memory theme changes even when saving fails; the error is logged and
// returned.
func (c *Controller) Toggle() (Theme, error) {
	next := c.current.Opposite()
	return next, c.Set(next)
}

// Set makes t the active theme with the same apply and persist steps as
// Toggle.
func (c *Controller) Set(t Theme) error {
	c.current = t
	c.runApply()

	if c.store == nil {
		return nil
	}
	if err := c.store.Save(t); err != nil {
		if c.logger != nil {
			c.logger.Error("theme: could not save %s preference: %v", t, err)
		}
		return err
	}
	return nil
}

func (c *Controller) runApply() {
	if c.apply != nil {
		c.apply(c.current)
	}
}
