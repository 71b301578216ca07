package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Validation errors.
var (
	ErrMaxItemsInvalid     = errors.New("history.max_items must be positive")
	ErrContextLinesInvalid = errors.New("editor.context_lines must be positive")
)

// Config is the root configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	Editor  EditorConfig  `toml:"editor"`
}

// HistoryConfig controls command history behavior.
type HistoryConfig struct {
	// Enabled turns history recording and recall on or off.
	Enabled bool `toml:"enabled"`

	// Path is the history file location. Empty keeps history in
	// memory only.
	Path string `toml:"path"`

	// MaxItems bounds the history; older entries are dropped at load.
	MaxItems int `toml:"max_items"`
}

// EditorConfig controls document-editor behavior.
type EditorConfig struct {
	// ContextLines is the default number of lines shown on each side
	// by the context command.
	ContextLines int `toml:"context_lines"`
}

// Default returns the built-in configuration. The history file lives in
// the user's home directory when one can be determined.
func Default() Config {
	cfg := Config{
		History: HistoryConfig{
			Enabled:  true,
			MaxItems: 10000,
		},
		Editor: EditorConfig{
			ContextLines: 2,
		},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History.Path = filepath.Join(home, ".poe_history")
	}
	return cfg
}

// Load reads the configuration at path, layered over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location, or an
// empty string when the user's config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "poe", "config.toml")
}

// Validate checks configured values.
func (c Config) Validate() error {
	if c.History.MaxItems <= 0 {
		return ErrMaxItemsInvalid
	}
	if c.Editor.ContextLines <= 0 {
		return ErrContextLinesInvalid
	}
	return nil
}
