package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/burntnail/pulse/internal/board"
	"github.com/burntnail/pulse/internal/engine"
	"github.com/burntnail/pulse/tui/keys"
	"github.com/burntnail/pulse/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SwitcherAction describes what the app should do after a switcher key press.
type SwitcherAction int

const (
	// ActionNone means no action needed.
	ActionNone SwitcherAction = iota
	// ActionClose means the user wants to dismiss the switcher.
	ActionClose
	// ActionSwitch means the user selected a board to switch to.
	ActionSwitch
	// ActionStop means the user wants to stop the selected board's poller.
	ActionStop
)

// SwitcherItem represents a single board entry in the switcher list.
type SwitcherItem struct {
	Name     string
	FilePath string
	Running  bool
	Info     engine.EngineInfo
}

// SwitcherView is a modal overlay that lists boards and lets the user
// switch between them or stop pollers.
type SwitcherView struct {
	theme  styles.Theme
	sty    *styles.Styles
	items  []SwitcherItem
	cursor int
	width  int
	height int
}

// NewSwitcherView creates a new SwitcherView with the given theme.
func NewSwitcherView(theme styles.Theme) SwitcherView {
	return SwitcherView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Refresh scans the boards directory and checks which pollers are running.
func (v *SwitcherView) Refresh(boardsDir string, mgr *engine.Manager) {
	v.items = nil

	names, err := board.List(boardsDir)
	if err != nil {
		return
	}

	running := make(map[string]engine.EngineInfo)
	for _, info := range mgr.ListEngines() {
		running[info.Name] = info
	}

	for _, name := range names {
		item := SwitcherItem{
			Name:     name,
			FilePath: filepath.Join(boardsDir, name+".toml"),
		}
		if info, ok := running[name]; ok {
			item.Running = true
			item.Info = info
		}
		v.items = append(v.items, item)
	}

	if v.cursor >= len(v.items) {
		v.cursor = len(v.items) - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

// SetSize updates the available dimensions for the overlay.
func (v *SwitcherView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SelectedItem returns the currently highlighted item, or nil if the list
// is empty.
func (v *SwitcherView) SelectedItem() *SwitcherItem {
	if len(v.items) == 0 {
		return nil
	}
	return &v.items[v.cursor]
}

// Update handles key messages for the switcher overlay.
func (v SwitcherView) Update(msg tea.Msg) (SwitcherView, tea.Cmd, SwitcherAction) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Back):
			return v, nil, ActionClose

		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil, ActionNone

		case key.Matches(msg, keys.DefaultKeyMap.Down):
			if v.cursor < len(v.items)-1 {
				v.cursor++
			}
			return v, nil, ActionNone

		case key.Matches(msg, keys.DefaultKeyMap.Enter):
			if len(v.items) > 0 {
				return v, nil, ActionSwitch
			}
			return v, nil, ActionNone

		case msg.String() == "x":
			if len(v.items) > 0 && v.items[v.cursor].Running {
				return v, nil, ActionStop
			}
			return v, nil, ActionNone
		}
	}
	return v, nil, ActionNone
}

// View renders the switcher as a centered modal box.
func (v SwitcherView) View() string {
	modalWidth := 44
	if v.width > 60 {
		modalWidth = v.width / 2
		if modalWidth > 60 {
			modalWidth = 60
		}
	}
	if modalWidth < 30 {
		modalWidth = 30
	}

	// Border is 2 chars, padding another 4.
	innerWidth := modalWidth - 6

	var lines []string

	if len(v.items) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
		lines = append(lines, dimStyle.Render("No boards found."))
		lines = append(lines, "")
		lines = append(lines, dimStyle.Render("Add a .toml file to the boards directory."))
	} else {
		for i, item := range v.items {
			lines = append(lines, v.renderItem(item, i == v.cursor, innerWidth))
		}
	}

	helpStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
	helpKeyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	help := fmt.Sprintf(
		"%s:switch  %s:stop  %s:close",
		helpKeyStyle.Render("enter"),
		helpKeyStyle.Render("x"),
		helpKeyStyle.Render("esc"),
	)

	content := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines, "\n"),
		"",
		helpStyle.Render(help),
	)

	noTopBorder := v.sty.ModalBorder.BorderTop(false)
	modalBody := noTopBorder.Width(innerWidth).Render(content)

	// Build the top border by hand so the title sits inside it.
	borderFg := lipgloss.NewStyle().Foreground(v.theme.Base0D).Background(v.theme.Base00)
	titleText := " Boards "
	titleRendered := v.sty.ModalTitle.Render(titleText)

	fullWidth := lipgloss.Width(modalBody)
	rightDashes := fullWidth - 2 - 1 - len(titleText)
	if rightDashes < 0 {
		rightDashes = 0
	}
	topBorder := borderFg.Render("╭─") + titleRendered + borderFg.Render(strings.Repeat("─", rightDashes)+"╮")

	modal := topBorder + "\n" + modalBody

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderItem renders a single board line with a right-aligned run state.
func (v SwitcherView) renderItem(item SwitcherItem, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	cursorStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)

	nameStyle := lipgloss.NewStyle().Foreground(v.theme.Base05)
	if selected {
		nameStyle = nameStyle.Foreground(v.theme.Base06).Bold(true)
	}

	var statusStr string
	var statusPlainLen int
	if item.Running {
		liveStyle := lipgloss.NewStyle().Foreground(v.theme.Base0B)
		pollStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
		pollStr := fmt.Sprintf("(%d)", item.Info.PollCount)
		statusStr = fmt.Sprintf("%s %s  %s",
			liveStyle.Render("*"),
			liveStyle.Render("LIVE"),
			pollStyle.Render(pollStr),
		)
		statusPlainLen = len(fmt.Sprintf("* LIVE  (%d)", item.Info.PollCount))
	} else {
		idleStyle := lipgloss.NewStyle().Foreground(v.theme.Base03)
		statusStr = fmt.Sprintf("%s %s",
			idleStyle.Render("o"),
			idleStyle.Render("idle"),
		)
		statusPlainLen = len("o idle")
	}

	padLen := width - len(cursor) - len(item.Name) - statusPlainLen
	if padLen < 2 {
		padLen = 2
	}

	return cursorStyle.Render(cursor) +
		nameStyle.Render(item.Name) +
		strings.Repeat(" ", padLen) +
		statusStr
}
