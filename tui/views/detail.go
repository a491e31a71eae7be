package views

import (
	"fmt"
	"strings"

	"github.com/burntnail/pulse/internal/engine"
	"github.com/burntnail/pulse/tui/components"
	"github.com/burntnail/pulse/tui/keys"
	"github.com/burntnail/pulse/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DetailView shows a single target: an info panel on top and the
// round-trip time history chart underneath.
type DetailView struct {
	theme  styles.Theme
	sty    *styles.Styles
	stats  *engine.TargetStats
	width  int
	height int
}

// NewDetailView creates a new DetailView with the given theme.
func NewDetailView(theme styles.Theme) DetailView {
	return DetailView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// SetTarget updates the detail view with fresh target stats.
func (v *DetailView) SetTarget(stats *engine.TargetStats) {
	v.stats = stats
}

// SetSize updates the available dimensions for the view.
func (v *DetailView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Update handles key messages. The third return value indicates whether
// the user wants to go back (Esc pressed).
func (v DetailView) Update(msg tea.Msg) (DetailView, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.DefaultKeyMap.Back) {
			return v, nil, true
		}
	}
	return v, nil, false
}

// View renders the detail view.
func (v DetailView) View() string {
	if v.stats == nil {
		msg := lipgloss.NewStyle().
			Foreground(v.theme.Base04).
			Align(lipgloss.Center).
			Render("No target selected")
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
	}
	return v.renderDetail()
}

func (v DetailView) renderDetail() string {
	infoPanel := v.renderInfoPanel(v.stats)

	infoPanelHeight := 12
	chartHeight := v.height - infoPanelHeight
	if chartHeight < 6 {
		chartHeight = 6
	}
	chartWidth := v.width - 2
	if chartWidth < 20 {
		chartWidth = 20
	}

	chart := components.RenderChart(
		rttSeries(v.stats.Samples, 0),
		chartWidth, chartHeight,
		"Round-Trip Time",
	)
	chartStyled := lipgloss.NewStyle().
		Foreground(v.theme.Base0C).
		Render(chart)

	helpLine := v.renderHelp()
	return lipgloss.JoinVertical(lipgloss.Left, infoPanel, "", chartStyled, helpLine)
}

func (v DetailView) renderInfoPanel(t *engine.TargetStats) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Width(14)
	valueStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base05)
	highlightStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	stateStyle := lipgloss.NewStyle().Foreground(v.theme.Base0A)
	stateText := "pending"
	switch {
	case t.Up:
		stateStyle = lipgloss.NewStyle().Foreground(v.theme.Base0B)
		stateText = "up"
	case !t.LastProbe.IsZero():
		stateStyle = lipgloss.NewStyle().Foreground(v.theme.Base08)
		stateText = "down"
	}

	rows := []string{
		"",
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Target:"),
			highlightStyle.Render(t.Label)),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Address:"),
			valueStyle.Render(t.Address)),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Kind:"),
			valueStyle.Render(t.Kind)),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("State:"),
			stateStyle.Render(stateText)),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Last RTT:"),
			valueStyle.Render(components.FormatLatency(t.LastRTT))),
		fmt.Sprintf("  %s%s / %s / %s",
			labelStyle.Render("Min/Avg/Max:"),
			valueStyle.Render(components.FormatLatency(t.Summary.Min)),
			valueStyle.Render(components.FormatLatency(t.Summary.Avg)),
			valueStyle.Render(components.FormatLatency(t.Summary.Max))),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("P95:"),
			valueStyle.Render(components.FormatLatency(t.Summary.P95))),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Jitter:"),
			valueStyle.Render(components.FormatLatency(t.Summary.Jitter))),
		fmt.Sprintf("  %s%s",
			labelStyle.Render("Loss:"),
			valueStyle.Render(fmt.Sprintf("%.1f%%", t.Summary.Loss))),
	}

	if t.ProbeErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(v.theme.Base08)
		rows = append(rows, fmt.Sprintf("  %s%s",
			labelStyle.Render("Error:"),
			errStyle.Render(truncate(t.ProbeErr.Error(), v.width-18))))
	}

	return strings.Join(rows, "\n")
}

func (v DetailView) renderHelp() string {
	helpStyle := lipgloss.NewStyle().Foreground(v.theme.Base04)
	keyStyle := lipgloss.NewStyle().Foreground(v.theme.Base0D).Bold(true)
	return helpStyle.Render(fmt.Sprintf("  %s to go back", keyStyle.Render("[esc]")))
}
