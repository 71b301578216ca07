package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
	if cfg.History.MaxItems != 10000 {
		t.Errorf("max items = %d, want 10000", cfg.History.MaxItems)
	}
	if cfg.Editor.ContextLines != 2 {
		t.Errorf("context lines = %d, want 2", cfg.Editor.ContextLines)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.MaxItems != 10000 {
		t.Errorf("max items = %d, want default 10000", cfg.History.MaxItems)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[history]
enabled = false
path = "/tmp/hist"
max_items = 50

[editor]
context_lines = 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled should be false")
	}
	if cfg.History.Path != "/tmp/hist" {
		t.Errorf("history.path = %q, want %q", cfg.History.Path, "/tmp/hist")
	}
	if cfg.History.MaxItems != 50 {
		t.Errorf("max items = %d, want 50", cfg.History.MaxItems)
	}
	if cfg.Editor.ContextLines != 5 {
		t.Errorf("context lines = %d, want 5", cfg.Editor.ContextLines)
	}
}

func TestLoadPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[history]\nmax_items = 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.History.MaxItems != 7 {
		t.Errorf("max items = %d, want 7", cfg.History.MaxItems)
	}
	if cfg.Editor.ContextLines != 2 {
		t.Errorf("context lines = %d, want default 2", cfg.Editor.ContextLines)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("history = {{"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should fail on malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.MaxItems = 0
	if err := cfg.Validate(); !errors.Is(err, ErrMaxItemsInvalid) {
		t.Errorf("Validate = %v, want ErrMaxItemsInvalid", err)
	}

	cfg = Default()
	cfg.Editor.ContextLines = -1
	if err := cfg.Validate(); !errors.Is(err, ErrContextLinesInvalid) {
		t.Errorf("Validate = %v, want ErrContextLinesInvalid", err)
	}
}
