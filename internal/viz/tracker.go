package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/rds"
)

type TickMsg time.Time

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Tracker replays the per-step histograms of a finished run.
type Tracker struct {
	title    string
	hists    []Histogram
	means    []float64
	spreads  []float64
	frame    int
	running  bool
	interval time.Duration
	barWidth int
}

// NewTracker bins every state of traj and prepares a replay advancing one
// step per interval.
func NewTracker(title string, traj rds.Trajectory, bins int, interval time.Duration) (Tracker, error) {
	hists, err := Histograms(traj, bins)
	if err != nil {
		return Tracker{}, err
	}
	means := make([]float64, len(traj))
	spreads := make([]float64, len(traj))
	for k, x := range traj {
		if len(x) > 0 {
			means[k] = stat.Mean(x, nil)
		}
		spreads[k] = metrics.CircularSpread(x)
	}
	return Tracker{
		title:    title,
		hists:    hists,
		means:    means,
		spreads:  spreads,
		running:  true,
		interval: interval,
		barWidth: 40,
	}, nil
}

// Frame is the index of the step on screen.
func (m Tracker) Frame() int { return m.frame }

func (m Tracker) Running() bool { return m.running }

func (m Tracker) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Tracker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
		case "[":
			m.running = false
			m.frame = max(m.frame-1, 0)
		case "]":
			m.running = false
			m.frame = min(m.frame+1, len(m.hists)-1)
		case "t":
			NextTheme()
		}
	case TickMsg:
		if m.running {
			if m.frame < len(m.hists)-1 {
				m.frame++
			} else {
				m.running = false
			}
		}
		return m, tick(m.interval)
	}
	return m, nil
}

func (m Tracker) View() string {
	if len(m.hists) == 0 {
		return "no states\n"
	}
	h := m.hists[m.frame]

	status := StatusPaused.Render("PAUSED")
	if m.running {
		status = StatusRunning.Render("RUNNING")
	}

	histView := panelStyle.Render(HistogramView(h, m.barWidth))

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(MetricLabel.Render("Step") + MetricValue.Render(fmt.Sprintf("%d/%d", h.Step, len(m.hists)-1)) + "\n")
	s.WriteString(MetricLabel.Render("Mean") + MetricValue.Render(fmt.Sprintf("%.4f", m.means[m.frame])) + "\n")
	s.WriteString(MetricLabel.Render("Spread") + MetricValue.Render(fmt.Sprintf("%.4f", m.spreads[m.frame])) + "\n\n")
	s.WriteString(Subtle.Render("mean") + "\n" + SparklineChart(m.means[:m.frame+1], 30) + "\n")
	s.WriteString(KeyHint.Render("\nSP:Pause R:Reset Q:Quit\n[ ]:Step T:Theme"))

	return lipgloss.JoinHorizontal(lipgloss.Top, histView, statsStyle.Render(s.String()))
}
