package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"vitae/internal/logging"
)

// Load reads a config file (TOML, YAML, or JSON, by extension) and overlays
// it onto defaults. A missing path returns defaults without error so the
// plugin can run unconfigured.
func Load(path string, log logging.Logger) (*Config, error) {
	log = logging.OrNop(log)
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Info("config: %s not found, using defaults", path)
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return FromMap(v.AllSettings(), log), nil
}

// LoadTitleTable reads a YAML threshold->label table, for swapping in custom
// age/strength/travel title sets without touching the main config.
func LoadTitleTable(path string) (map[int]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read title table %s: %w", path, err)
	}
	var raw map[int]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode title table %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("title table %s is empty", path)
	}
	return raw, nil
}
