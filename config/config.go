package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultPath is ~/.ltop/config.json.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".ltop", "config.json")
}

// Load reads the config at path, falling back to defaults (and writing
// them out) when the file is missing or corrupt. A broken config file must
// never keep the monitor from starting.
func Load(path string) (*Config, error) {
	os.MkdirAll(filepath.Dir(path), 0755)

	data, err := os.ReadFile(path)
	if err != nil {
		cfg := defaultConfig()
		_ = Save(path, cfg)
		return cfg, nil
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg := defaultConfig()
		_ = Save(path, cfg)
		return cfg, nil
	}

	if cfg.RefreshIntervalMS <= 0 {
		cfg.RefreshIntervalMS = defaultConfig().RefreshIntervalMS
	}
	if cfg.Webhooks == nil {
		cfg.Webhooks = map[string]string{}
	}

	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		RefreshIntervalMS: 3000,
		MemThresholdKB:    1024 * 1024, // 1 GB resident
		ActiveWebhook:     "",
		Webhooks:          map[string]string{},
	}
}
