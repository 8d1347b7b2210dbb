package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported by LoadInvaders when no file was found.
const SourceEmbedded = "embedded"

// LoadInvaders loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
// The returned string names the source that was used.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		return cfg, customPath, err
	}

	// Try user config directory, then local configs directory.
	// A broken fallback file is skipped rather than fatal.
	for _, path := range []string{userConfigPath("invaders.yaml"), filepath.Join("configs", "invaders.yaml")} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	return embeddedDefaults(), SourceEmbedded, nil
}

// LoadFile reads and validates a single configuration file.
func LoadFile(path string) (InvadersConfig, error) {
	return loadFile(path)
}

func loadFile(path string) (InvadersConfig, error) {
	cfg := embeddedDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode picks the format from the file extension; anything that is not
// .toml is treated as YAML.
func decode(path string, data []byte, cfg *InvadersConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		_, err := toml.Decode(string(data), cfg)
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// embeddedDefaults parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is broken.
func embeddedDefaults() InvadersConfig {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
