package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadThemeOverrides reads a flat YAML mapping of theme overrides. Keys may
// name palette colors or layout constants; values merge over the chosen
// preset with override precedence.
func LoadThemeOverrides(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme overrides: %w", err)
	}

	overrides := make(map[string]any)
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse theme overrides %s: %w", path, err)
	}
	return overrides, nil
}
