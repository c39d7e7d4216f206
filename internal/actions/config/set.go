package config

import (
	"strings"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/theme"
	"github.com/bmdict/cli/internal/ui/style"
	"github.com/bmdict/cli/internal/usage"
)

func Set(args []string, flags *dispatchers.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := strings.Join(args[1:], " ")

	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	if err := validateValue(key, value); err != nil {
		return err
	}

	var updated bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}
		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}
	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}

func validateValue(key, value string) error {
	switch key {
	case "theme":
		if _, ok := theme.Parse(value); !ok {
			return usage.InvalidValue(key, value, "light", "dark")
		}
	case "enable_log":
		if value != "true" && value != "false" {
			return usage.InvalidValue(key, value, "true", "false")
		}
	case "display_time":
		if value != "24h" && value != "12h" {
			return usage.InvalidValue(key, value, "24h", "12h")
		}
	case "log_level":
		switch strings.ToLower(value) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return usage.InvalidValue(key, value, "debug", "info", "warn", "error")
		}
	}
	if strings.HasPrefix(key, "color_") && !style.IsValidColor(value) {
		return usage.InvalidValue(key, value, "0-255")
	}
	return nil
}
