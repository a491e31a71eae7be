package board

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleBoard = `
name = "edge"
default_identity = "ops"
interval = "10s"
max_history = 100

[[groups]]
name = "web"

  [[groups.targets]]
  kind = "http"
  address = "https://example.com/healthz"
  label = "example"

  [[groups.targets]]
  kind = "tcp"
  address = "db.internal:5432"
  identity = "db-ops"
  timeout = "1s"
`

func writeBoard(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edge.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	b, err := Load(writeBoard(t, sampleBoard))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Name != "edge" {
		t.Errorf("Name=%q", b.Name)
	}
	if b.Interval != 10*time.Second {
		t.Errorf("Interval=%v, want 10s", b.Interval)
	}
	if b.MaxHistory != 100 {
		t.Errorf("MaxHistory=%d, want 100", b.MaxHistory)
	}

	targets := b.Groups[0].Targets
	if targets[0].Identity != "ops" {
		t.Errorf("first target should inherit default_identity, got %q", targets[0].Identity)
	}
	if targets[0].Timeout != 3*time.Second {
		t.Errorf("first target Timeout=%v, want default 3s", targets[0].Timeout)
	}
	if targets[1].Identity != "db-ops" {
		t.Errorf("second target Identity=%q, want db-ops", targets[1].Identity)
	}
	if targets[1].Timeout != time.Second {
		t.Errorf("second target Timeout=%v, want 1s", targets[1].Timeout)
	}
}

func TestLoadMinimalBoard(t *testing.T) {
	b, err := Load(writeBoard(t, "name = \"tiny\"\n[[groups]]\nname = \"g\"\n[[groups.targets]]\naddress = \"host:22\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Interval != 5*time.Second {
		t.Errorf("Interval=%v, want default 5s", b.Interval)
	}
	if b.MaxHistory != 240 {
		t.Errorf("MaxHistory=%d, want default 240", b.MaxHistory)
	}
	if b.Groups[0].Targets[0].Kind != KindHTTP {
		t.Errorf("Kind=%q, want default http", b.Groups[0].Targets[0].Kind)
	}
}

func TestLoadRejectsMissingAddress(t *testing.T) {
	_, err := Load(writeBoard(t, "name = \"bad\"\n[[groups]]\nname = \"g\"\n[[groups.targets]]\nkind = \"tcp\"\n"))
	if err == nil {
		t.Error("Load should reject a target without an address")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b := &Board{
		Name:       "rt",
		Interval:   7 * time.Second,
		MaxHistory: 50,
		Groups: []Group{{
			Name: "g",
			Targets: []Target{{
				Kind:    KindTCP,
				Address: "host:443",
				Timeout: 2 * time.Second,
			}},
		}},
	}
	path := filepath.Join(dir, "rt.toml")
	if err := Save(b, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Interval != 7*time.Second {
		t.Errorf("Interval=%v, want 7s", loaded.Interval)
	}
	if loaded.Groups[0].Targets[0].Timeout != 2*time.Second {
		t.Errorf("Timeout=%v, want 2s", loaded.Groups[0].Targets[0].Timeout)
	}
}

func TestListBoards(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.toml", "b.toml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("name = \"x\""), 0600); err != nil {
			t.Fatal(err)
		}
	}
	names, err := List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("List()=%v, want [a b]", names)
	}
}

func TestDisplayLabel(t *testing.T) {
	tg := Target{Address: "host:80"}
	if tg.DisplayLabel() != "host:80" {
		t.Errorf("DisplayLabel()=%q", tg.DisplayLabel())
	}
	tg.Label = "web"
	if tg.DisplayLabel() != "web" {
		t.Errorf("DisplayLabel()=%q", tg.DisplayLabel())
	}
}
