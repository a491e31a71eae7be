package engine

import (
	"fmt"
	"sync"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/identity"
)

// Manager coordinates multiple Pollers, one per board.
type Manager struct {
	mu      sync.RWMutex
	engines map[string]*Poller
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{
		engines: make(map[string]*Poller),
	}
}

// Start creates and launches a Poller for the given board.
func (m *Manager) Start(b *board.Board, provider identity.Provider) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.engines[b.Name]; exists {
		return fmt.Errorf("engine %q already running", b.Name)
	}

	p, err := NewPoller(b, provider)
	if err != nil {
		return err
	}

	m.engines[b.Name] = p
	go p.Run()
	return nil
}

// Restart replaces a running engine with one built from the new board
// definition. Used when a board file changes on disk.
func (m *Manager) Restart(b *board.Board, provider identity.Provider) error {
	if err := m.Stop(b.Name); err != nil {
		return err
	}
	return m.Start(b, provider)
}

// Stop halts the Poller for the named board and removes it.
func (m *Manager) Stop(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.engines[name]
	if !ok {
		return fmt.Errorf("engine %q not found", name)
	}

	p.Stop()
	delete(m.engines, name)
	return nil
}

// GetSnapshot returns a point-in-time snapshot for the named board.
func (m *Manager) GetSnapshot(name string) (*BoardSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine %q not found", name)
	}
	return p.Snapshot(), nil
}

// Subscribe returns a channel that receives events for the named board.
func (m *Manager) Subscribe(name string) (<-chan EngineEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.engines[name]
	if !ok {
		return nil, fmt.Errorf("engine %q not found", name)
	}
	return p.Subscribe(), nil
}

// ListEngines returns summary info for all running engines.
func (m *Manager) ListEngines() []EngineInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]EngineInfo, 0, len(m.engines))
	for _, p := range m.engines {
		infos = append(infos, p.Info())
	}
	return infos
}

// StopAll halts and removes all running engines.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for name, p := range m.engines {
		p.Stop()
		delete(m.engines, name)
	}
}
