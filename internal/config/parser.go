package config

import (
	"fmt"
	"strings"
)

// Parse turns config lines into a key/value map. Blank lines and lines
// starting with # are skipped. A value wrapped in matching double or single
// quotes is unquoted. Duplicate keys resolve to the last occurrence.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, raw := range lines {
		line := raw
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimSpace(line)

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value, got %q", i+1, raw)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		cfg[key] = unquote(strings.TrimSpace(value))
	}

	return cfg, nil
}

func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if (first == '"' || first == '\'') && first == last {
		return value[1 : len(value)-1]
	}
	return value
}
