package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/burntnail/pulse/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the two-line footer showing poll cadence, last
// poll time, probe cycle cost, and key bindings.
func RenderStatusBar(theme styles.Theme, interval time.Duration, lastPoll time.Time, cycleTime time.Duration, width int) string {
	bg := theme.Base01
	bgStyle := lipgloss.NewStyle().Background(bg)
	sep := lipgloss.NewStyle().Foreground(theme.Base03).Background(bg).Render(" | ")

	infoStyle := lipgloss.NewStyle().Foreground(theme.Base05).Background(bg)

	pollSeg := infoStyle.Render(fmt.Sprintf("every %s", interval))
	lastStr := "never"
	if !lastPoll.IsZero() {
		lastStr = lastPoll.Format("15:04:05")
	}
	lastSeg := infoStyle.Render(fmt.Sprintf("last %s", lastStr))
	cycleSeg := infoStyle.Render(fmt.Sprintf("cycle %s", FormatLatency(cycleTime)))

	top := bgStyle.Render(" ") + pollSeg + sep + lastSeg + sep + cycleSeg
	if w := lipgloss.Width(top); w < width {
		top += bgStyle.Render(strings.Repeat(" ", width-w))
	}

	keyStyle := lipgloss.NewStyle().Foreground(theme.Base0D).Background(bg).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.Base04).Background(bg)
	spacer := bgStyle.Render("  ")

	keyLine := bgStyle.Render(" ") +
		keyStyle.Render("enter") + descStyle.Render(":detail") + spacer +
		keyStyle.Render("b") + descStyle.Render(":boards") + spacer +
		keyStyle.Render("p") + descStyle.Render(":pause") + spacer +
		keyStyle.Render("?") + descStyle.Render(":help") + spacer +
		keyStyle.Render("q") + descStyle.Render(":quit")

	if w := lipgloss.Width(keyLine); w < width {
		keyLine += bgStyle.Render(strings.Repeat(" ", width-w))
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, keyLine)
}
