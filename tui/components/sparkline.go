package components

import (
	"fmt"
	"strings"
	"time"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders values as a row of block characters, right-aligned
// within width. Only the newest width values are shown.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	for i := len(values); i < width; i++ {
		sb.WriteRune(' ')
	}
	spread := hi - lo
	for _, v := range values {
		if spread == 0 {
			sb.WriteRune(sparkBlocks[3])
			continue
		}
		idx := int((v - lo) / spread * float64(len(sparkBlocks)-1))
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

// FormatLatency renders a round-trip time compactly for table cells and
// axis labels.
func FormatLatency(d time.Duration) string {
	switch {
	case d <= 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%dus", d.Microseconds())
	case d < 10*time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

// FormatLatencyMicros is FormatLatency over a value in microseconds,
// for chart axes that plot float data.
func FormatLatencyMicros(us float64) string {
	return FormatLatency(time.Duration(us) * time.Microsecond)
}
