package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetConfigDirUsesXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-config", "pulse") {
		t.Errorf("GetConfigDir()=%q", dir)
	}
}

func TestGetBoardsDirUnderConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	dir, err := GetBoardsDir()
	if err != nil {
		t.Fatalf("GetBoardsDir: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join("pulse", "boards")) {
		t.Errorf("GetBoardsDir()=%q", dir)
	}
}

func TestGetIdentityStorePath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	path, err := GetIdentityStorePath()
	if err != nil {
		t.Fatalf("GetIdentityStorePath: %v", err)
	}
	if filepath.Base(path) != "identities.enc" {
		t.Errorf("GetIdentityStorePath()=%q", path)
	}
}

func TestEnsureDirs(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))
	if err := EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	dir, _ := GetBoardsDir()
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("boards dir %q not created: %v", dir, err)
	}
}
