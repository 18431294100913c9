package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899")).
			Width(12)

	MetricValue = lipgloss.NewStyle().
			Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	BarStyle       = lipgloss.NewStyle()
	StatusRunning  = lipgloss.NewStyle().Bold(true)
	StatusPaused   = lipgloss.NewStyle().Bold(true)
	panelStyle     = lipgloss.NewStyle().Padding(1, 2)
	statsStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	sparkHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	sparkMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

func init() {
	applyTheme(CurrentTheme)
}

func applyTheme(t Theme) {
	HeaderStyle = HeaderStyle.Foreground(t.Text)
	MetricValue = MetricValue.Foreground(t.Accent)
	BarStyle = BarStyle.Foreground(t.Bar)
	StatusRunning = StatusRunning.Foreground(t.Running)
	StatusPaused = StatusPaused.Foreground(t.Paused)
	Subtle = Subtle.Foreground(t.Muted)
}

// Bar renders fraction of width as a solid bar padded with shade.
func Bar(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return BarStyle.Render(strings.Repeat("█", filled)) + Subtle.Render(strings.Repeat("░", width-filled))
}

// HistogramView renders one bar per bin, scaled so the fullest bin spans
// width.
func HistogramView(h Histogram, width int) string {
	peak := 0.0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}
	var sb strings.Builder
	for i, c := range h.Counts {
		frac := 0.0
		if peak > 0 {
			frac = c / peak
		}
		label := fmt.Sprintf("[%.2f,%.2f)", h.Edges[i], h.Edges[i+1])
		fmt.Fprintf(&sb, "%s %s %d\n", Subtle.Render(label), Bar(frac, width), int(c))
	}
	return sb.String()
}

// SparklineChart renders values as a one-line sparkline of at most width
// characters, colored by level.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// Keep the most recent values.
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var result strings.Builder
	for _, v := range values {
		norm := (v - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(sparkHighStyle.Render(c))
		case norm > 0.3:
			result.WriteString(sparkMidStyle.Render(c))
		default:
			result.WriteString(sparkLowStyle.Render(c))
		}
	}
	return result.String()
}
