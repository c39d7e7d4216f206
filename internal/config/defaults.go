package config

import "github.com/bmdict/cli/internal/domain"

// Get returns the value for key from ~/.bmdrc, falling back to the key's
// default. The bool is false only for keys that are neither set nor known.
func Get(key string) (string, bool) {
	if cfg, err := load(); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}
	return domain.GetDefaultValue(key)
}

// GetAll returns every known key at its default, overlaid with the values set
// in ~/.bmdrc. An unreadable file yields the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = key.Default
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}
