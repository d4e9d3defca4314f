// Package config reads and writes the color configuration under the user
// config dir. Only presentation settings live on disk; session content is
// never persisted.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const configFile = "config.json"

// Config holds the terminal color palette.
type Config struct {
	AccentColor    string `json:"accentColor"`
	HeaderColor    string `json:"headerColor"`
	TextColor      string `json:"textColor"`
	DimColor       string `json:"dimColor"`
	HighlightColor string `json:"highlightColor"`
	ErrorColor     string `json:"errorColor"`
}

// Default returns the built-in palette.
func Default() Config {
	return Config{
		AccentColor:    "#cba6f7",
		HeaderColor:    "#89b4fa",
		TextColor:      "#cdd6f4",
		DimColor:       "#6c7086",
		HighlightColor: "#f9e2af",
		ErrorColor:     "#f38ba8",
	}
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "apocalipsis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads the config file, writing the defaults back when it is absent
// or unreadable.
func Load() (Config, error) {
	cfg := Default()
	dir, err := configDir()
	if err != nil {
		return cfg, err
	}
	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if err != nil {
		_ = Save(cfg)
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// Save writes the config file.
func Save(cfg Config) error {
	dir, err := configDir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, configFile), data, 0o644)
}
