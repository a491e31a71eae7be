package tui

import (
	"path/filepath"
	"time"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/config"
	"github.com/burntnail/pulse/internal/engine"
	"github.com/burntnail/pulse/internal/identity"
	"github.com/burntnail/pulse/tui/components"
	"github.com/burntnail/pulse/tui/keys"
	"github.com/burntnail/pulse/tui/styles"
	"github.com/burntnail/pulse/tui/views"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version is stamped at build time via -ldflags.
var Version = "0.1.0"

// AppState represents the current screen of the application.
type AppState int

const (
	StateDashboard AppState = iota
	StateSwitcher
	StateDetail
)

// TickMsg triggers a periodic UI refresh to pick up new poll data.
type TickMsg struct{}

// BoardChangedMsg reports a board file change seen by the directory watcher.
type BoardChangedMsg struct {
	Event board.ChangeEvent
}

// AppModel is the root Bubble Tea model that manages all views and state.
type AppModel struct {
	state       AppState
	theme       styles.Theme
	config      *config.Config
	manager     *engine.Manager
	provider    identity.Provider
	watcher     *board.Watcher
	boardsDir   string
	dashboard   views.DashboardView
	detail      views.DetailView
	switcher    views.SwitcherView
	help        views.HelpView
	width       int
	height      int
	activeBoard string
	detailLabel string
	paused      bool
}

// NewAppModel creates the root model. provider and watcher may be nil when
// no identity store or boards directory is available.
func NewAppModel(cfg *config.Config, mgr *engine.Manager, provider identity.Provider, watcher *board.Watcher, boardsDir, activeBoard string) AppModel {
	theme := styles.DefaultTheme
	if t := styles.GetThemeByName(cfg.Theme); t != nil {
		theme = *t
	}
	return AppModel{
		state:       StateDashboard,
		theme:       theme,
		config:      cfg,
		manager:     mgr,
		provider:    provider,
		watcher:     watcher,
		boardsDir:   boardsDir,
		dashboard:   views.NewDashboardView(theme),
		detail:      views.NewDetailView(theme),
		switcher:    views.NewSwitcherView(theme),
		help:        views.NewHelpView(theme),
		activeBoard: activeBoard,
	}
}

// Init starts the tick loop and, if a watcher exists, the watch pump.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.watchCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// watchCmd blocks on the next watcher event and wraps it as a message.
// The command is re-issued after each delivery.
func (m AppModel) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return BoardChangedMsg{Event: ev}
	}
}

// Update handles messages and dispatches to the active view.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Body height is total minus header and the two status bar lines.
		body := msg.Height - 3
		m.dashboard.SetSize(msg.Width, body)
		m.detail.SetSize(msg.Width, body)
		m.switcher.SetSize(msg.Width, body)
		m.help.SetSize(msg.Width, body)
		return m, nil

	case TickMsg:
		if m.activeBoard != "" && !m.paused {
			if snap, err := m.manager.GetSnapshot(m.activeBoard); err == nil {
				m.dashboard.SetSnapshot(snap)
				m.refreshDetail(snap)
			}
		}
		return m, tickCmd()

	case BoardChangedMsg:
		m.handleBoardChange(msg.Event)
		return m, m.watchCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help overlay swallows everything except its own toggles.
	if m.help.IsVisible() {
		if key.Matches(msg, keys.DefaultKeyMap.Help) || key.Matches(msg, keys.DefaultKeyMap.Back) {
			m.help.Toggle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.DefaultKeyMap.Quit):
		m.manager.StopAll()
		if m.watcher != nil {
			m.watcher.Close()
		}
		return m, tea.Quit
	case key.Matches(msg, keys.DefaultKeyMap.Help):
		m.help.Toggle()
		return m, nil
	}

	switch m.state {
	case StateDashboard:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			if t, ok := m.dashboard.SelectedTarget(); ok {
				m.detailLabel = t.Label
				m.detail.SetTarget(&t)
				m.state = StateDetail
			}
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Boards):
			m.switcher.Refresh(m.boardsDir, m.manager)
			m.state = StateSwitcher
			return m, nil
		case key.Matches(msg, keys.DefaultKeyMap.Pause):
			m.paused = !m.paused
			return m, nil
		}
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd

	case StateDetail:
		var cmd tea.Cmd
		var back bool
		m.detail, cmd, back = m.detail.Update(msg)
		if back {
			m.state = StateDashboard
			m.detailLabel = ""
		}
		return m, cmd

	case StateSwitcher:
		var cmd tea.Cmd
		var action views.SwitcherAction
		m.switcher, cmd, action = m.switcher.Update(msg)
		switch action {
		case views.ActionClose:
			m.state = StateDashboard
		case views.ActionSwitch:
			if item := m.switcher.SelectedItem(); item != nil {
				m.switchBoard(item)
				m.state = StateDashboard
			}
		case views.ActionStop:
			if item := m.switcher.SelectedItem(); item != nil {
				m.manager.Stop(item.Name)
				if item.Name == m.activeBoard {
					m.activeBoard = ""
					m.dashboard.SetSnapshot(nil)
				}
				m.switcher.Refresh(m.boardsDir, m.manager)
			}
		}
		return m, cmd
	}
	return m, nil
}

// switchBoard makes the selected board active, starting its poller if it
// is not already running.
func (m *AppModel) switchBoard(item *views.SwitcherItem) {
	if !item.Running {
		b, err := board.Load(item.FilePath)
		if err != nil {
			return
		}
		if err := m.manager.Start(b, m.provider); err != nil {
			return
		}
	}
	m.activeBoard = item.Name
	if snap, err := m.manager.GetSnapshot(item.Name); err == nil {
		m.dashboard.SetSnapshot(snap)
	}
}

// handleBoardChange reloads or stops pollers when board files change on
// disk.
func (m *AppModel) handleBoardChange(ev board.ChangeEvent) {
	if ev.Removed {
		m.manager.Stop(ev.Name)
		if ev.Name == m.activeBoard {
			m.activeBoard = ""
			m.dashboard.SetSnapshot(nil)
		}
		return
	}

	b, err := board.Load(filepath.Join(m.boardsDir, ev.Name+".toml"))
	if err != nil {
		return
	}
	// Only boards that are already running restart on edit. Idle board
	// files just get picked up by the switcher next time it opens.
	for _, info := range m.manager.ListEngines() {
		if info.Name == ev.Name {
			m.manager.Restart(b, m.provider)
			if snap, err := m.manager.GetSnapshot(ev.Name); err == nil && ev.Name == m.activeBoard {
				m.dashboard.SetSnapshot(snap)
			}
			return
		}
	}
}

// refreshDetail keeps the detail view in sync with the latest snapshot.
func (m *AppModel) refreshDetail(snap *engine.BoardSnapshot) {
	if m.state != StateDetail || m.detailLabel == "" || snap == nil {
		return
	}
	for _, g := range snap.Groups {
		for _, t := range g.Targets {
			if t.Label == m.detailLabel {
				stats := t
				m.detail.SetTarget(&stats)
				return
			}
		}
	}
}

// View composes the header, active body view, and status bar.
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var lastPoll time.Time
	var cycleTime time.Duration
	upCount, totalCount := 0, 0
	if m.activeBoard != "" {
		if snap, err := m.manager.GetSnapshot(m.activeBoard); err == nil {
			lastPoll = snap.LastPoll
			cycleTime = snap.CycleTime
			for _, g := range snap.Groups {
				for _, t := range g.Targets {
					totalCount++
					if t.Up {
						upCount++
					}
				}
			}
		}
	}

	header := components.RenderHeader(
		m.theme,
		m.activeBoard,
		m.activeBoard != "" && !m.paused,
		upCount,
		totalCount,
		m.width,
		Version,
	)

	var body string
	switch m.state {
	case StateDashboard:
		body = m.dashboard.View()
	case StateDetail:
		body = m.detail.View()
	case StateSwitcher:
		body = m.switcher.View()
	}
	if m.help.IsVisible() {
		body = m.help.View()
	}

	statusBar := components.RenderStatusBar(m.theme, m.config.ProbeInterval, lastPoll, cycleTime, m.width)

	bodyHeight := m.height - 3
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	bodyStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(bodyHeight).
		Background(m.theme.Base00).
		Foreground(m.theme.Base05)

	return lipgloss.JoinVertical(lipgloss.Left, header, bodyStyle.Render(body), statusBar)
}
