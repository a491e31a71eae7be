package board

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debouncePeriod is how long repeated writes to the same board file are
// coalesced into a single event.
const debouncePeriod = 250 * time.Millisecond

// ChangeEvent reports that a board file was written or removed.
type ChangeEvent struct {
	Name    string // board name (file base without extension)
	Removed bool
}

// Watcher watches a boards directory and emits a ChangeEvent whenever a
// .toml file in it changes. Editor save patterns produce bursts of
// write events for the same file, so each board's event fires once,
// one debounce period after the last write of the burst. Emitting on
// the trailing edge matters: a truncate-then-write save must be
// reported after the write that carries the real contents, not on the
// truncate.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan ChangeEvent
	errs   chan error
	done   chan struct{}

	mu      sync.Mutex
	pending map[string]*time.Timer
	closed  bool
}

// NewWatcher starts watching dir for board file changes.
func NewWatcher(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		fw:      fw,
		events:  make(chan ChangeEvent, 16),
		errs:    make(chan error, 1),
		pending: make(map[string]*time.Timer),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		for _, t := range w.pending {
			t.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".toml") {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(ev.Name), ".toml")
			switch {
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				w.cancel(name)
				w.emit(ChangeEvent{Name: name, Removed: true})
			case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
				w.schedule(name)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.done:
			return
		}
	}
}

// schedule arms the debounce timer for name, pushing it back if a burst
// is already in flight.
func (w *Watcher) schedule(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if t, ok := w.pending[name]; ok {
		t.Reset(debouncePeriod)
		return
	}
	w.pending[name] = time.AfterFunc(debouncePeriod, func() {
		w.mu.Lock()
		delete(w.pending, name)
		w.mu.Unlock()
		w.emit(ChangeEvent{Name: name})
	})
}

func (w *Watcher) cancel(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.pending[name]; ok {
		t.Stop()
		delete(w.pending, name)
	}
}

// emit sends without blocking; a slow consumer loses intermediate events,
// which is fine since a reload always reads the latest file contents.
func (w *Watcher) emit(ev ChangeEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	select {
	case w.events <- ev:
	default:
	}
}

// Events returns the channel of board change events.
func (w *Watcher) Events() <-chan ChangeEvent { return w.events }

// Errors returns the channel of watcher errors.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
