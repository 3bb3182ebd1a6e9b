package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the file name looked up in every config directory.
const configFile = "panels.yaml"

// LoadPanels loads the panel game configuration.
// Search order: customPath -> ~/.panelpop/configs/panels.yaml -> ./configs/panels.yaml -> embedded default
// Fields missing from a file keep their default values. A file that exists
// but cannot be read or parsed is an error, not a reason to fall through.
func LoadPanels(customPath string) (PanelsConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, found, err := loadFile(customPath)
		if err != nil {
			return PanelsConfig{}, err
		}
		if !found {
			return PanelsConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, os.ErrNotExist)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		cfg, found, err := loadFile(path)
		if err != nil {
			return PanelsConfig{}, err
		}
		if found {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPanelsYAML)
	if err != nil {
		return DefaultPanelsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses one config file.
// found is false only when the file does not exist.
func loadFile(path string) (cfg PanelsConfig, found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return PanelsConfig{}, false, nil
	}
	if err != nil {
		return PanelsConfig{}, true, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err = parse(data)
	if err != nil {
		return PanelsConfig{}, true, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, true, nil
}

// parse decodes YAML on top of the hardcoded defaults.
func parse(data []byte) (PanelsConfig, error) {
	cfg := DefaultPanelsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PanelsConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".panelpop", "configs", filename)
}
