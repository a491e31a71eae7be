package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadConfig on missing file: %v", err)
	}
	if cfg.Theme != "solarized-dark" {
		t.Errorf("Theme=%q, want default", cfg.Theme)
	}
	if cfg.ProbeInterval != 5*time.Second {
		t.Errorf("ProbeInterval=%v, want 5s", cfg.ProbeInterval)
	}
}

func TestLoadConfigParsesInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "theme = \"gruvbox-dark\"\nprobe_interval = \"30s\"\nmax_history = 120\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Theme != "gruvbox-dark" {
		t.Errorf("Theme=%q", cfg.Theme)
	}
	if cfg.ProbeInterval != 30*time.Second {
		t.Errorf("ProbeInterval=%v, want 30s", cfg.ProbeInterval)
	}
	if cfg.MaxHistory != 120 {
		t.Errorf("MaxHistory=%d, want 120", cfg.MaxHistory)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Theme = "nord"
	cfg.ProbeInterval = 42 * time.Second

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Theme != "nord" {
		t.Errorf("Theme=%q, want nord", loaded.Theme)
	}
	if loaded.ProbeInterval != 42*time.Second {
		t.Errorf("ProbeInterval=%v, want 42s", loaded.ProbeInterval)
	}
}
