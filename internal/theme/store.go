package theme

import "github.com/bmdict/cli/internal/domain"

// ConfigKey is the config entry holding the preference.
const ConfigKey = "theme"

// ConfigStore persists the preference in the bmd config file.
type ConfigStore struct {
	cfg domain.ConfigProvider
}

func NewConfigStore(cfg domain.ConfigProvider) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

// Load treats a missing, empty or unrecognized value as no preference.
func (s *ConfigStore) Load() (Theme, bool) {
	value, ok := s.cfg.Get(ConfigKey)
	if !ok {
		return "", false
	}
	return Parse(value)
}

func (s *ConfigStore) Save(t Theme) error {
	return s.cfg.Set(ConfigKey, string(t))
}

var _ PreferenceStore = (*ConfigStore)(nil)
