// Package config loads and saves the menuflow configuration: key bindings for
// the navigation events and a handful of UI settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration.
type Config struct {
	Title string      `toml:"title"`
	Keys  KeyBindings `toml:"keys"`
	UI    UISettings  `toml:"ui"`
}

// KeyBindings maps navigation events to the key names bubbletea reports.
// Several keys may drive the same event.
type KeyBindings struct {
	Next     []string `toml:"next"`
	Previous []string `toml:"previous"`
	Select   []string `toml:"select"`
	Clear    []string `toml:"clear"`
	Quit     []string `toml:"quit"`
	Help     []string `toml:"help"`
}

// UISettings holds presentation options.
type UISettings struct {
	MouseEnabled  bool `toml:"mouse_enabled"`
	CopyOnSelect  bool `toml:"copy_on_select"`
	MaxLabelWidth int  `toml:"max_label_width"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title: "menuflow",
		Keys: KeyBindings{
			Next:     []string{"down", "j"},
			Previous: []string{"up", "k"},
			Select:   []string{"enter", " "},
			Clear:    []string{"esc"},
			Quit:     []string{"q", "ctrl+c"},
			Help:     []string{"?"},
		},
		UI: UISettings{
			MouseEnabled:  true,
			CopyOnSelect:  true,
			MaxLabelWidth: 60,
		},
	}
}

// Service handles configuration management.
type Service interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(cfg *Config, path string) error
}

type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return &service{filePath: filepath.Join(configDir, "menuflow", "config.toml")}
}

// Load reads the config from the default location, returning defaults when no
// file exists yet.
func (s *service) Load() (*Config, error) {
	return s.LoadFromPath(s.filePath)
}

// LoadFromPath reads the config from an explicit path. A missing file is not
// an error: the defaults are returned.
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveToPath writes the config as TOML, creating parent directories as
// needed.
func (s *service) SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
