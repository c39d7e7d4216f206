package config

import (
	"encoding/json"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/usage"
)

func Get(args []string, flags *dispatchers.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	value, _ := deps.Get(key)

	if flags.Has("--json") {
		out, err := json.Marshal(map[string]string{key: value})
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(out))
		return nil
	}

	_, _ = deps.Println(value)
	return nil
}
