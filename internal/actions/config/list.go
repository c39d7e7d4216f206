package config

import (
	"encoding/json"

	"github.com/bmdict/cli/internal/dispatchers"
	"github.com/bmdict/cli/internal/domain"
	"github.com/bmdict/cli/internal/ui/style"
)

type listEntry struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Section string `json:"section"`
}

func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, key := range domain.VisibleConfigKeys() {
		value, exists := configMap[key.Name]
		if !exists {
			value = key.Default
		}
		if key.HideIfEmpty && value == "" {
			continue
		}
		entries = append(entries, listEntry{Key: key.Name, Value: value, Section: key.Section})
	}

	if flags.Has("--json") {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, _ = deps.Println(string(out))
		return nil
	}

	section := ""
	for _, e := range entries {
		if e.Section != section {
			if section != "" {
				_, _ = deps.Println()
			}
			section = e.Section
			_, _ = deps.Println(style.Header("# " + section))
		}
		_, _ = deps.Printf("%s=%s\n", e.Key, e.Value)
	}

	return nil
}
