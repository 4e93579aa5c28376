package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the worm configuration.
// Search order: customPath -> ~/.worm/config.yaml -> ./configs/worm.yaml -> embedded default.
// Files only need to set the fields they change; the rest keep their defaults.
func Load(customPath string) (WormConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", "worm.yaml")); err == nil {
		return cfg, filepath.Join("configs", "worm.yaml"), nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWormYAML)
	if err != nil {
		return DefaultWormConfig(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (WormConfig, error) {
	cfg := DefaultWormConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg WormConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func loadFile(path string) (WormConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWormConfig(), fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".worm", filename)
}
