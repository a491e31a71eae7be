package components

import (
	"fmt"

	"github.com/burntnail/pulse/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// RenderHeader renders the top header bar with the app name, active board,
// live/paused status, and target health.
func RenderHeader(theme styles.Theme, boardName string, isLive bool, upCount, totalCount, width int, ver string) string {
	bg := theme.Base01

	name := lipgloss.NewStyle().
		Foreground(theme.Base0D).
		Background(bg).
		Bold(true).
		Render("pulse")

	displayBoard := boardName
	if displayBoard == "" {
		displayBoard = "(no board)"
	}
	boardSeg := lipgloss.NewStyle().
		Foreground(theme.Base05).
		Background(bg).
		Render(displayBoard)

	status := "PAUSED"
	statusColor := theme.Base0A
	if isLive {
		status = "LIVE"
		statusColor = theme.Base0B
	}
	statusSeg := lipgloss.NewStyle().
		Foreground(statusColor).
		Background(bg).
		Render(status)

	healthColor := theme.Base0B
	if upCount < totalCount {
		healthColor = theme.Base08
	}
	healthSeg := lipgloss.NewStyle().
		Foreground(healthColor).
		Background(bg).
		Render(fmt.Sprintf("%d/%d up", upCount, totalCount))

	verSeg := lipgloss.NewStyle().
		Foreground(theme.Base04).
		Background(bg).
		Render("v" + ver)

	content := fmt.Sprintf(" %s  |  %s  |  %s  |  %s  |  %s ", name, boardSeg, statusSeg, healthSeg, verSeg)

	return lipgloss.NewStyle().
		Background(bg).
		Width(width).
		Render(content)
}
