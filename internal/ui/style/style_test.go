package style

import (
	"strings"
	"testing"
)

func clearColorEnv(t *testing.T) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("BMD_NO_COLOR", "")
	for key := range colorConfigKeys {
		t.Setenv("BMD_"+strings.ToUpper(key), "")
	}
}

var helpers = []struct {
	name string
	fn   func(string) string
}{
	{"Success", Success},
	{"Warning", Warning},
	{"Error", Error},
	{"Info", Info},
	{"Header", Header},
	{"Muted", Muted},
	{"Match", Match},
}

func TestDisabledReturnsPlainText(t *testing.T) {
	clearColorEnv(t)
	Init(false, ThemeDark, nil)

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}
			if strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with disabled styling contains ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestEnabledReturnsStyledText(t *testing.T) {
	clearColorEnv(t)
	Init(true, ThemeDark, nil)
	defer Init(false, ThemeLight, nil)

	for _, tt := range helpers {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if !strings.Contains(output, input) {
				t.Errorf("%s() output %q does not contain input %q", tt.name, output, input)
			}
			if !strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with enabled styling should contain ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	for _, env := range []string{"NO_COLOR", "BMD_NO_COLOR"} {
		t.Run(env, func(t *testing.T) {
			clearColorEnv(t)
			t.Setenv(env, "1")

			Init(true, ThemeDark, nil)

			if Enabled() {
				t.Errorf("Enabled() should return false when %s is set", env)
			}
			if got := Success("test"); got != "test" {
				t.Errorf("Success() should return plain text when %s is set: got %q", env, got)
			}
		})
	}
}

func TestInitThemeSelection(t *testing.T) {
	clearColorEnv(t)

	tests := []struct {
		theme string
		want  string
	}{
		{ThemeDark, ThemeDark},
		{ThemeLight, ThemeLight},
		{"solarized", ThemeLight},
		{"", ThemeLight},
	}

	for _, tt := range tests {
		Init(false, tt.theme, nil)
		if got := CurrentTheme(); got != tt.want {
			t.Errorf("Init(%q): CurrentTheme() = %q, want %q", tt.theme, got, tt.want)
		}
		if got := GetColors(); got != Themes[tt.want] {
			t.Errorf("Init(%q): GetColors() = %+v, want %+v", tt.theme, got, Themes[tt.want])
		}
	}
}

func TestApplyKeepsOverrides(t *testing.T) {
	clearColorEnv(t)
	Init(false, ThemeLight, map[string]string{"color_match": "200"})

	Apply(ThemeDark)

	if got := CurrentTheme(); got != ThemeDark {
		t.Errorf("CurrentTheme() = %q, want dark", got)
	}
	colors := GetColors()
	if colors.Match != "200" {
		t.Errorf("Match = %q, want override 200", colors.Match)
	}
	if colors.Info != Themes[ThemeDark].Info {
		t.Errorf("Info = %q, want dark palette value", colors.Info)
	}
}

func TestLoadColorConfig_Overrides(t *testing.T) {
	clearColorEnv(t)
	t.Setenv("BMD_COLOR_SUCCESS", "99")

	cfg := map[string]string{
		"color_success":   "1",
		"color_ui_active": "33",
		"color_error":     "",
	}

	got := LoadColorConfig(ThemeDark, cfg)

	if got.Success != "99" {
		t.Errorf("Success = %q, env should win over config", got.Success)
	}
	if got.UIActive != "33" {
		t.Errorf("UIActive = %q, want config value 33", got.UIActive)
	}
	if got.Error != Themes[ThemeDark].Error {
		t.Errorf("Error = %q, empty config value should keep palette", got.Error)
	}
}

func TestEmptyStringHandling(t *testing.T) {
	clearColorEnv(t)

	Init(false, ThemeLight, nil)
	if got := Success(""); got != "" {
		t.Errorf("Success(\"\") with disabled styling: got %q, want \"\"", got)
	}
}

func TestStylerDelegates(t *testing.T) {
	clearColorEnv(t)
	Init(false, ThemeLight, nil)

	s := NewStyler()
	if s.Enabled() {
		t.Error("Styler.Enabled() should mirror package state")
	}
	if got := s.Header("h"); got != "h" {
		t.Errorf("Styler.Header() = %q", got)
	}

	var nop NopStyler
	if nop.Enabled() || nop.Error("e") != "e" {
		t.Error("NopStyler should return text unchanged")
	}
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"0", true},
		{"255", true},
		{"256", false},
		{"-1", false},
		{"#fff", true},
		{"#1e90ff", true},
		{"#12345", false},
		{"#ggg", false},
		{"bold", true},
		{"red", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidColor(tt.value); got != tt.want {
			t.Errorf("IsValidColor(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
