package viz

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rdsim/internal/analysis"
	"github.com/san-kum/rdsim/internal/rds"
)

// ASCII renders with asciigraph line plots and lipgloss histogram bars.
type ASCII struct {
	Width    int
	Height   int
	BarWidth int
}

func NewASCII() *ASCII {
	return &ASCII{Width: 70, Height: 15, BarWidth: 40}
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Red,
	asciigraph.Blue,
}

func (a *ASCII) Trajectory(w io.Writer, title string, traj rds.Trajectory) error {
	cols, err := Columns(traj)
	if err != nil {
		return err
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return errors.Wrap(rds.ErrShapeMismatch, "plot: empty trajectory")
	}

	colors := make([]asciigraph.AnsiColor, len(cols))
	for i := range colors {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	graph := asciigraph.PlotMany(cols,
		asciigraph.Height(a.Height),
		asciigraph.Width(a.Width),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(1),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(title),
	)
	_, err = fmt.Fprintln(w, graph)
	return err
}

func (a *ASCII) Tracking(w io.Writer, title string, hists []Histogram) error {
	if _, err := fmt.Fprintln(w, HeaderStyle.Render(title)); err != nil {
		return err
	}
	for _, h := range hists {
		if _, err := fmt.Fprintf(w, "step %d\n%s\n", h.Step, HistogramView(h, a.BarWidth)); err != nil {
			return err
		}
	}
	return nil
}

// ReturnMapCanvas plots points of the unit square on a Braille canvas of
// width x height cells, with the diagonal y = x for reference.
func ReturnMapCanvas(points []analysis.Point, width, height int) *Canvas {
	c := NewCanvas(width, height)
	c.Diagonal()
	for _, p := range points {
		c.PlotUnit(p.X, p.Y)
	}
	return c
}
