package viz

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/san-kum/rdsim/internal/rds"
)

// HTML renders self-contained echarts pages.
type HTML struct {
	// MaxFrames caps the number of histogram charts on a tracking page;
	// longer runs are subsampled evenly, always keeping the last step.
	MaxFrames int
}

func NewHTML() *HTML {
	return &HTML{MaxFrames: 24}
}

func globalOpts(title string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeChalk,
			PageTitle: title,
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
	}
}

// newTrajectoryChart creates a line chart with one series per coordinate.
func newTrajectoryChart(title string, cols [][]float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(append(globalOpts(title),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
	)...)

	steps := make([]int, len(cols[0]))
	for k := range steps {
		steps[k] = k
	}
	chart.SetXAxis(steps)
	for i, col := range cols {
		items := make([]opts.LineData, len(col))
		for k, v := range col {
			items[k] = opts.LineData{Value: v}
		}
		chart.AddSeries(fmt.Sprintf("x%d", i), items)
	}
	return chart
}

// newHistogramChart creates a bar chart of one step's bin fractions.
func newHistogramChart(title string, h Histogram) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(append(globalOpts(title),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1}),
	)...)

	labels := make([]string, len(h.Counts))
	for i := range labels {
		labels[i] = fmt.Sprintf("%.2f", (h.Edges[i]+h.Edges[i+1])/2)
	}
	items := make([]opts.BarData, len(h.Counts))
	for i, f := range h.Fractions() {
		items[i] = opts.BarData{Value: f}
	}
	chart.SetXAxis(labels).AddSeries(fmt.Sprintf("step %d", h.Step), items)
	return chart
}

func (r *HTML) Trajectory(w io.Writer, title string, traj rds.Trajectory) error {
	cols, err := Columns(traj)
	if err != nil {
		return err
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return errors.Wrap(rds.ErrShapeMismatch, "plot: empty trajectory")
	}
	return newTrajectoryChart(title, cols).Render(w)
}

func (r *HTML) Tracking(w io.Writer, title string, hists []Histogram) error {
	page := components.NewPage()
	page.PageTitle = title
	for _, h := range r.frames(hists) {
		page.AddCharts(newHistogramChart(fmt.Sprintf("%s: step %d", title, h.Step), h))
	}
	return page.Render(w)
}

func (r *HTML) frames(hists []Histogram) []Histogram {
	if r.MaxFrames <= 0 || len(hists) <= r.MaxFrames {
		return hists
	}
	if r.MaxFrames == 1 {
		return hists[len(hists)-1:]
	}
	out := make([]Histogram, 0, r.MaxFrames)
	stride := float64(len(hists)-1) / float64(r.MaxFrames-1)
	for i := 0; i < r.MaxFrames; i++ {
		out = append(out, hists[int(float64(i)*stride+0.5)])
	}
	return out
}
