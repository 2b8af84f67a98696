package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the user and local directories.
const FileName = "seedart.yaml"

// Load reads the configuration and validates it.
// Search order: customPath -> ~/.seedart/seedart.yaml -> ./configs/seedart.yaml -> embedded default
//
// A custom path must exist and parse. The user and local files are
// skipped silently when missing or malformed. Keys absent from a file keep
// their default values.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		err = cfg.Validate()
		return cfg, err
	}

	for _, p := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		candidate := Default()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			err = candidate.Validate()
			return candidate, err
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		cfg = Default() // Fallback to hardcoded if embed fails
	}
	err := cfg.Validate()
	return cfg, err
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seedart", filename)
}
