package theme

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/log"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/usage"
)

type memoryConfig struct {
	values  map[string]string
	failSet bool
}

func (m *memoryConfig) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryConfig) GetAll() (map[string]string, error) { return m.values, nil }

func (m *memoryConfig) Set(key, value string) error {
	if m.failSet {
		return errors.New("read-only home")
	}
	m.values[key] = value
	return nil
}

func (m *memoryConfig) Unset(key string) error {
	delete(m.values, key)
	return nil
}

type harness struct {
	cfg     *memoryConfig
	applied []theme.Theme
	out     strings.Builder
}

func newHarness(values map[string]string) *harness {
	if values == nil {
		values = map[string]string{}
	}
	return &harness{cfg: &memoryConfig{values: values}}
}

func (h *harness) deps(systemDark bool) Deps {
	return Deps{
		Config:     h.cfg,
		SystemDark: func() bool { return systemDark },
		Apply:      func(t theme.Theme) { h.applied = append(h.applied, t) },
		Logger:     log.NopLogger{},
		Printf: func(format string, a ...any) (int, error) {
			return fmt.Fprintf(&h.out, format, a...)
		},
		Println: func(a ...any) (int, error) {
			return fmt.Fprintln(&h.out, a...)
		},
		Themes: style.Themes,
	}
}

func noFlags() *dispatchers.ParsedFlags {
	return dispatchers.NewParsedFlags(nil)
}

func TestShow(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		systemDark bool
		want       string
	}{
		{"from config", map[string]string{"theme": "dark"}, false, "dark (config)"},
		{"config beats system", map[string]string{"theme": "light"}, true, "light (config)"},
		{"system dark", nil, true, "dark (terminal background)"},
		{"default", nil, false, "light (default)"},
		{"invalid config value", map[string]string{"theme": "neon"}, false, "light (default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(tt.values)
			require.NoError(t, show(nil, noFlags(), h.deps(tt.systemDark)))
			require.Equal(t, tt.want+"\n", h.out.String())
			require.Empty(t, h.applied)
		})
	}
}

func TestToggle(t *testing.T) {
	h := newHarness(map[string]string{"theme": "light"})

	require.NoError(t, toggle(nil, noFlags(), h.deps(false)))
	require.Equal(t, "dark", h.cfg.values["theme"])
	require.Equal(t, []theme.Theme{theme.Light, theme.Dark}, h.applied)
	require.Equal(t, "theme set to dark\n", h.out.String())
}

func TestToggle_FromSystemPreference(t *testing.T) {
	h := newHarness(nil)

	require.NoError(t, toggle(nil, noFlags(), h.deps(true)))
	require.Equal(t, "light", h.cfg.values["theme"])
}

func TestToggle_SaveError(t *testing.T) {
	h := newHarness(nil)
	h.cfg.failSet = true

	err := toggle(nil, noFlags(), h.deps(false))
	require.ErrorContains(t, err, "read-only home")
	require.Empty(t, h.out.String())
}

func TestSet(t *testing.T) {
	h := newHarness(nil)

	require.NoError(t, setTheme([]string{"Dark"}, noFlags(), h.deps(false)))
	require.Equal(t, "dark", h.cfg.values["theme"])
	require.Equal(t, "theme set to dark\n", h.out.String())
}

func TestSet_Invalid(t *testing.T) {
	h := newHarness(nil)

	err := setTheme([]string{"neon"}, noFlags(), h.deps(false))
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrInvalidValue, ue.Kind)
	require.Empty(t, h.cfg.values)
}

func TestSet_MissingArgument(t *testing.T) {
	h := newHarness(nil)

	err := setTheme(nil, noFlags(), h.deps(false))
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, usage.ErrMissingArgument, ue.Kind)
}

func TestList(t *testing.T) {
	h := newHarness(map[string]string{"theme": "dark"})

	require.NoError(t, list(nil, noFlags(), h.deps(false)))
	out := h.out.String()
	require.Contains(t, out, "  light")
	require.Contains(t, out, "* dark")
	require.Contains(t, out, "bmd theme toggle")
}
