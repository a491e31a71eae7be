package components

import (
	"fmt"
	"math"
	"strings"
)

// chartBlocks run from empty to full. Index 0 is a space, index 8 is a
// full block.
var chartBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderChart renders a latency history as a block-character chart.
// Data is plotted oldest to newest, left to right, in microseconds.
// width and height are the total character dimensions including the
// Y-axis labels and the title row.
func RenderChart(data []float64, width, height int, title string) string {
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}

	labelWidth := 9 // e.g. "  120ms "
	plotWidth := width - labelWidth
	if plotWidth < 2 {
		plotWidth = 2
	}
	plotHeight := height - 1
	if plotHeight < 2 {
		plotHeight = 2
	}

	lines := []string{centerText(title, width)}

	if len(data) == 0 {
		blank := strings.Repeat(" ", labelWidth+plotWidth)
		for i := 0; i < plotHeight; i++ {
			lines = append(lines, blank)
		}
		return strings.Join(lines, "\n")
	}

	if len(data) > plotWidth {
		data = data[len(data)-plotWidth:]
	}

	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		hi = lo + 1
	}
	// Latencies are positive; anchoring the axis at zero keeps spikes
	// visually proportional.
	if lo > 0 {
		lo = 0
	}
	spread := hi - lo

	for row := plotHeight - 1; row >= 0; row-- {
		cellBottom := lo + spread*float64(row)/float64(plotHeight)
		cellTop := lo + spread*float64(row+1)/float64(plotHeight)

		label := fmt.Sprintf("%8s ", FormatLatencyMicros(cellTop))
		if len(label) > labelWidth {
			label = label[len(label)-labelWidth:]
		}

		cells := make([]rune, 0, plotWidth)
		for i := len(data); i < plotWidth; i++ {
			cells = append(cells, ' ')
		}
		for _, v := range data {
			switch {
			case v <= cellBottom:
				cells = append(cells, ' ')
			case v >= cellTop:
				cells = append(cells, chartBlocks[8])
			default:
				frac := (v - cellBottom) / (cellTop - cellBottom)
				idx := int(math.Round(frac * 8))
				if idx < 0 {
					idx = 0
				} else if idx > 8 {
					idx = 8
				}
				cells = append(cells, chartBlocks[idx])
			}
		}
		lines = append(lines, label+string(cells))
	}

	return strings.Join(lines, "\n")
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(s)-pad)
}
