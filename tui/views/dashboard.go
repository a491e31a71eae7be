package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/burntnail/pulse/internal/engine"
	"github.com/burntnail/pulse/tui/components"
	"github.com/burntnail/pulse/tui/keys"
	"github.com/burntnail/pulse/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Column width constants (minimum widths).
const (
	colTarget   = 24
	colKind     = 6
	colState    = 6
	colLast     = 9
	colAvg      = 9
	colP95      = 9
	colLoss     = 7
	colTrendMin = 12
)

// DashboardView is the main monitoring table showing every probe target
// grouped by board group.
type DashboardView struct {
	theme     styles.Theme
	sty       *styles.Styles
	snapshot  *engine.BoardSnapshot
	cursor    int
	width     int
	height    int
	totalRows int
}

// NewDashboardView creates a new DashboardView with the given theme.
func NewDashboardView(theme styles.Theme) DashboardView {
	return DashboardView{
		theme: theme,
		sty:   styles.NewStyles(theme),
	}
}

// Update handles key messages for cursor navigation within the table.
func (v DashboardView) Update(msg tea.Msg) (DashboardView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v.cursor > 0 {
				v.cursor--
			}
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			if v.cursor < v.totalRows-1 {
				v.cursor++
			}
		case key.Matches(msg, keys.DefaultKeyMap.PageUp):
			v.cursor -= v.pageSize()
			if v.cursor < 0 {
				v.cursor = 0
			}
		case key.Matches(msg, keys.DefaultKeyMap.PageDown):
			v.cursor += v.pageSize()
			if v.cursor >= v.totalRows {
				v.cursor = v.totalRows - 1
			}
			if v.cursor < 0 {
				v.cursor = 0
			}
		}
	}
	return v, nil
}

// SetSnapshot updates the table data, clamping the cursor if the target
// count shrank.
func (v *DashboardView) SetSnapshot(snap *engine.BoardSnapshot) {
	v.snapshot = snap
	total := 0
	if snap != nil {
		for _, g := range snap.Groups {
			total += len(g.Targets)
		}
	}
	v.totalRows = total
	if v.cursor >= v.totalRows && v.totalRows > 0 {
		v.cursor = v.totalRows - 1
	}
}

// SetSize updates the available dimensions for the view.
func (v *DashboardView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SelectedTarget returns the stats for the target under the cursor, or
// false when the board is empty.
func (v DashboardView) SelectedTarget() (engine.TargetStats, bool) {
	if v.snapshot == nil {
		return engine.TargetStats{}, false
	}
	idx := 0
	for _, g := range v.snapshot.Groups {
		for _, t := range g.Targets {
			if idx == v.cursor {
				return t, true
			}
			idx++
		}
	}
	return engine.TargetStats{}, false
}

// View renders the dashboard table.
func (v DashboardView) View() string {
	if v.snapshot == nil || v.totalRows == 0 {
		return v.renderEmpty()
	}
	return v.renderTable()
}

func (v DashboardView) pageSize() int {
	n := v.height - 1
	if n < 1 {
		n = 1
	}
	return n
}

// columnWidths calculates responsive column widths. The trend sparkline
// gets whatever space remains.
func (v DashboardView) columnWidths() (target, kind, state, last, avg, p95, loss, trend int) {
	target = colTarget
	kind = colKind
	state = colState
	last = colLast
	avg = colAvg
	p95 = colP95
	loss = colLoss

	fixed := target + kind + state + last + avg + p95 + loss
	trend = v.width - fixed
	if trend < colTrendMin {
		trend = colTrendMin
	}
	return
}

func (v DashboardView) renderTable() string {
	wTarget, wKind, wState, wLast, wAvg, wP95, wLoss, wTrend := v.columnWidths()

	headerStyle := v.sty.TableHeader
	header := headerStyle.Render(padRight("Target", wTarget)) +
		headerStyle.Render(padRight("Kind", wKind)) +
		headerStyle.Render(padRight("State", wState)) +
		headerStyle.Render(padLeft("Last", wLast)) +
		headerStyle.Render(padLeft("Avg", wAvg)) +
		headerStyle.Render(padLeft("P95", wP95)) +
		headerStyle.Render(padLeft("Loss", wLoss)) +
		headerStyle.Render(padRight(" Trend", wTrend))

	lines := []string{header}

	// Flatten groups into renderable rows, tracking the cursor's position
	// in the combined list so scrolling can keep it visible.
	var rows []string
	cursorRow := 0
	idx := 0
	for _, g := range v.snapshot.Groups {
		rows = append(rows, v.sty.GroupHeader.Render(
			padRight(fmt.Sprintf("--- %s ---", g.Name), v.width),
		))
		for _, t := range g.Targets {
			selected := idx == v.cursor
			if selected {
				cursorRow = len(rows)
			}
			rows = append(rows, v.renderTargetRow(t, wTarget, wKind, wState, wLast, wAvg, wP95, wLoss, wTrend, selected))
			idx++
		}
	}

	visible := v.height - 1
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursorRow >= visible {
		start = cursorRow - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	lines = append(lines, rows[start:end]...)
	return strings.Join(lines, "\n")
}

func (v DashboardView) renderTargetRow(
	t engine.TargetStats,
	wTarget, wKind, wState, wLast, wAvg, wP95, wLoss, wTrend int,
	selected bool,
) string {
	rowStyle := v.sty.TableRow
	if selected {
		rowStyle = v.sty.TableRowSel
	}
	sel := func(st lipgloss.Style) lipgloss.Style {
		if selected {
			return st.Background(v.theme.Base02)
		}
		return st
	}

	name := rowStyle.Render(padRight(truncate(t.Label, wTarget-1), wTarget))
	kind := rowStyle.Render(padRight(t.Kind, wKind))

	var state string
	switch {
	case t.LastProbe.IsZero():
		state = sel(v.sty.StatusUnknown).Render(padRight("...", wState))
	case t.Up:
		state = sel(v.sty.StatusUp).Render(padRight("up", wState))
	default:
		state = sel(v.sty.StatusDown).Render(padRight("down", wState))
	}

	last := rowStyle.Render(padLeft(components.FormatLatency(t.LastRTT), wLast))

	avgStyle := sel(v.latencyStyle(t.Summary.Avg))
	avg := avgStyle.Render(padLeft(components.FormatLatency(t.Summary.Avg), wAvg))
	p95Style := sel(v.latencyStyle(t.Summary.P95))
	p95 := p95Style.Render(padLeft(components.FormatLatency(t.Summary.P95), wP95))

	lossText := fmt.Sprintf("%.0f%%", t.Summary.Loss)
	lossStyle := sel(v.sty.LatGood)
	if t.Summary.Loss > 0 {
		lossStyle = sel(v.sty.LatBad)
	}
	loss := lossStyle.Render(padLeft(lossText, wLoss))

	spark := components.Sparkline(rttSeries(t.Samples, wTrend-1), wTrend-1)
	trend := sel(v.sty.SparklineStyle).Render(" " + spark)

	return name + kind + state + last + avg + p95 + loss + trend
}

// latencyStyle picks a threshold color for a round-trip time.
func (v DashboardView) latencyStyle(d time.Duration) lipgloss.Style {
	switch {
	case d == 0:
		return v.sty.TableCellDim
	case d < 100*time.Millisecond:
		return v.sty.LatGood
	case d < 300*time.Millisecond:
		return v.sty.LatWarn
	default:
		return v.sty.LatBad
	}
}

func (v DashboardView) renderEmpty() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Align(lipgloss.Center)

	keyStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base0D).
		Bold(true)

	msg := lipgloss.JoinVertical(lipgloss.Center,
		"",
		msgStyle.Render("No board loaded"),
		"",
		msgStyle.Render(fmt.Sprintf(
			"Press %s to open a board",
			keyStyle.Render("[b]"),
		)),
		"",
	)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}

// rttSeries converts samples to microsecond values for sparkline and
// chart rendering. Failed probes plot as zero so outages read as gaps.
func rttSeries(samples []engine.Sample, maxWidth int) []float64 {
	if len(samples) == 0 {
		return nil
	}
	data := make([]float64, len(samples))
	for i, s := range samples {
		if s.OK {
			data[i] = float64(s.RTT.Microseconds())
		}
	}
	if maxWidth > 0 && len(data) > maxWidth {
		data = data[len(data)-maxWidth:]
	}
	return data
}

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
