package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/rds"
)

const (
	liveCanvasWidth  = 30
	liveCanvasHeight = 15
	historyCapacity  = 600
)

// Live steps a model one draw at a time and shows the coordinate population
// as dots on the circle next to its histogram.
type Live struct {
	title    string
	model    *rds.Model
	mode     rds.Mode
	x0       rds.State
	state    rds.State
	step     int
	bins     int
	running  bool
	interval time.Duration
	canvas   *Canvas
	means    []float64
	metrics  []metrics.Metric
	err      error
}

func NewLive(title string, model *rds.Model, x0 rds.State, mode rds.Mode, bins int, interval time.Duration) Live {
	m := Live{
		title:    title,
		model:    model,
		mode:     mode,
		x0:       x0.Clone(),
		state:    x0.Clone(),
		bins:     bins,
		running:  true,
		interval: interval,
		canvas:   NewCanvas(liveCanvasWidth, liveCanvasHeight),
		means:    make([]float64, 0, historyCapacity),
		metrics:  metrics.Defaults(),
	}
	m.observe()
	return m
}

func (m Live) State() rds.State { return m.state }
func (m Live) Step() int        { return m.step }
func (m Live) Err() error       { return m.err }

func (m Live) Init() tea.Cmd {
	return tick(m.interval)
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			NextTheme()
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tick(m.interval)
	}
	return m, nil
}

// advance draws one step through the sampler, starting from the current
// state.
func (m *Live) advance() {
	res, err := rds.Sample(m.model, 1, m.state, rds.Options{Mode: m.mode})
	if err != nil {
		m.err = err
		m.running = false
		return
	}
	m.state = res.Trajectory[1]
	m.step++
	m.observe()
}

func (m *Live) observe() {
	for _, mt := range m.metrics {
		mt.OnStep(m.step, m.state)
	}
	m.means = append(m.means, stat.Mean(m.state, nil))
	if len(m.means) > historyCapacity {
		m.means = m.means[1:]
	}
}

func (m *Live) reset() {
	m.state = m.x0.Clone()
	m.step = 0
	m.err = nil
	m.means = m.means[:0]
	for _, mt := range m.metrics {
		mt.Reset()
	}
	m.observe()
}

// draw places every coordinate on the circle at angle 2πx.
func (m *Live) draw() {
	m.canvas.Clear()
	for i := 0; i < 360; i += 3 {
		a := float64(i) * math.Pi / 180
		m.canvas.PlotUnit(0.5+0.45*math.Cos(a), 0.5+0.45*math.Sin(a))
	}
	for _, x := range m.state {
		a := 2 * math.Pi * x
		for _, r := range []float64{0.3, 0.33, 0.36} {
			m.canvas.PlotUnit(0.5+r*math.Cos(a), 0.5+r*math.Sin(a))
		}
	}
}

func (m Live) View() string {
	m.draw()

	status := StatusPaused.Render("PAUSED")
	if m.running {
		status = StatusRunning.Render("RUNNING")
	}
	if m.err != nil {
		status = StatusPaused.Render("STOPPED: " + m.err.Error())
	}

	left := panelStyle.Render(m.canvas.String())
	hists, err := Histograms(rds.Trajectory{m.state}, m.bins)
	if err == nil {
		left = lipgloss.JoinVertical(lipgloss.Left, left, panelStyle.Render(HistogramView(hists[0], 30)))
	}

	var s strings.Builder
	s.WriteString(HeaderStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(status + "\n\n")
	s.WriteString(MetricLabel.Render("Mode") + MetricValue.Render(m.mode.String()) + "\n")
	s.WriteString(MetricLabel.Render("Step") + MetricValue.Render(fmt.Sprintf("%d", m.step)) + "\n")
	for _, mt := range m.metrics {
		s.WriteString(MetricLabel.Render(mt.Name()) + MetricValue.Render(fmt.Sprintf("%.4f", mt.Value())) + "\n")
	}
	s.WriteString("\n" + Subtle.Render("mean") + "\n" + SparklineChart(m.means, 30) + "\n")
	s.WriteString(KeyHint.Render("\nSP:Pause R:Reset Q:Quit T:Theme"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, statsStyle.Render(s.String()))
}
