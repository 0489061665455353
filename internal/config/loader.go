package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads game settings.
// Search order: path -> embedded default. A file is overlaid onto the
// defaults, so it only needs the fields it changes. The result is validated.
func Load(path string) (Game, error) {
	if path == "" {
		cfg := defaults()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Game{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes settings from YAML overlaid onto the defaults and validates them.
func Parse(data []byte) (Game, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// defaults decodes the embedded YAML.
func defaults() Game {
	cfg := DefaultGame()
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGame() // Fallback to hardcoded if embed fails
	}
	return cfg
}
