package style

import (
	"os"
	"strconv"
	"strings"
)

// ColorConfig holds all configurable colors for the UI.
// Values are ANSI color numbers (0-255) or "bold".
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Muted    string
	Header   string
	Match    string // highlighted part of a suggestion
	UIActive string // focused row, input border
	UIDim    string // unfocused borders, separators
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeNames lists the built-in palettes in display order.
var ThemeNames = []string{ThemeLight, ThemeDark}

// Themes contains the built-in palettes.
// Dark uses bright colors, light uses dark saturated ones.
var Themes = map[string]ColorConfig{
	ThemeDark: {
		Success:  "10",  // bright green
		Warning:  "11",  // bright yellow
		Error:    "9",   // bright red
		Info:     "14",  // bright cyan
		Muted:    "245", // medium gray
		Header:   "bold",
		Match:    "11",
		UIActive: "14",
		UIDim:    "240",
	},
	ThemeLight: {
		Success:  "28",  // dark green
		Warning:  "130", // dark orange
		Error:    "124", // dark red
		Info:     "27",  // dark blue
		Muted:    "243", // medium-dark gray
		Header:   "bold",
		Match:    "130",
		UIActive: "27",
		UIDim:    "252",
	},
}

// IsValidTheme reports whether name is a built-in palette.
func IsValidTheme(name string) bool {
	_, ok := Themes[name]
	return ok
}

// colorConfigKeys maps config keys to the field they override. The matching
// environment variable is the upper-cased key with a BMD_ prefix.
var colorConfigKeys = map[string]string{
	"color_success":   "Success",
	"color_error":     "Error",
	"color_info":      "Info",
	"color_muted":     "Muted",
	"color_match":     "Match",
	"color_ui_active": "UIActive",
}

// LoadColorConfig returns the palette for theme with overrides applied.
// Priority: BMD_COLOR_* env, then config value, then palette. An unknown
// theme falls back to light.
func LoadColorConfig(theme string, cfg map[string]string) ColorConfig {
	result, ok := Themes[theme]
	if !ok {
		result = Themes[ThemeLight]
	}

	for configKey, field := range colorConfigKeys {
		if envVal := os.Getenv("BMD_" + strings.ToUpper(configKey)); envVal != "" {
			setColorField(&result, field, envVal)
			continue
		}
		if cfgVal := cfg[configKey]; cfgVal != "" {
			setColorField(&result, field, cfgVal)
		}
	}

	return result
}

func setColorField(c *ColorConfig, field, value string) {
	switch field {
	case "Success":
		c.Success = value
	case "Error":
		c.Error = value
	case "Info":
		c.Info = value
	case "Muted":
		c.Muted = value
	case "Match":
		c.Match = value
	case "UIActive":
		c.UIActive = value
	}
}

// IsValidColor accepts an ANSI 256 index ("0"-"255"), a hex color
// ("#rgb" or "#rrggbb") or "bold".
func IsValidColor(value string) bool {
	if value == "bold" {
		return true
	}
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(value)
	return err == nil && n >= 0 && n <= 255
}
