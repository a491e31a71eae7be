package board

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "edge.toml")
	if err := os.WriteFile(path, []byte("name = \"edge\""), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Name != "edge" || ev.Removed {
			t.Errorf("event = %+v, want {edge false}", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after board file write")
	}
}

func TestWatcherBurstSaveEmitsFinalContents(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// A save is a truncate followed by the write of the real contents.
	// Both land inside one debounce window; the event must come after
	// the second write so a reload sees the final file.
	path := filepath.Join(dir, "burst.toml")
	if err := os.WriteFile(path, []byte("name = "), 0600); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("name = \"burst\""), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Name != "burst" || ev.Removed {
			t.Fatalf("event = %+v, want {burst false}", ev)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != "name = \"burst\"" {
			t.Errorf("contents at event time = %q, want final write", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after burst of writes")
	}

	// The burst collapses to a single event.
	select {
	case ev := <-w.Events():
		t.Errorf("extra event after burst: %+v", ev)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherIgnoresNonTOML(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for non-TOML file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.toml")
	if err := os.WriteFile(path, []byte("name = \"gone\""), 0600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Name != "gone" || !ev.Removed {
			t.Errorf("event = %+v, want {gone true}", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after board file removal")
	}
}
