// Package config loads tool-level settings for the openspec CLI. These are
// distinct from the project configuration in openspec/config.yaml: they
// control how the tool behaves (output, concurrency), not what a workflow
// contains.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds openspec CLI settings.
// Priority: environment variables > user config file > defaults.
type Configuration struct {
	// DefaultSchema overrides the built-in default schema name.
	DefaultSchema string `koanf:"default_schema"`
	// Concurrency caps parallel change validation in `openspec validate --all`.
	Concurrency int `koanf:"concurrency" validate:"min=1,max=64"`
	// NoColor disables colored output.
	NoColor bool `koanf:"no_color"`
	// JSON makes commands emit JSON by default.
	JSON bool `koanf:"json"`
}

// Load loads configuration from the user config file and environment.
func Load() (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if path := userConfigPath(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	// Environment variables win: OPENSPEC_CONCURRENCY -> concurrency.
	k.Load(env.Provider("OPENSPEC_", ".", envTransform), nil)

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// NO_COLOR is the conventional cross-tool opt-out.
	if os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return &cfg, nil
}

// userConfigPath returns $XDG_CONFIG_HOME/openspec/config.yaml with a
// ~/.config fallback.
func userConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "openspec", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "openspec", "config.yaml")
}

// envTransform converts environment variable names to config keys.
// Example: OPENSPEC_DEFAULT_SCHEMA -> default_schema
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "OPENSPEC_"))
}
