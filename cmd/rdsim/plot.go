package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/rdsim/internal/analysis"
	"github.com/san-kum/rdsim/internal/export"
	"github.com/san-kum/rdsim/internal/viz"
)

const (
	returnMapWidth  = 40
	returnMapHeight = 20
	svgSize         = 400
	svgDotScale     = 4
)

func runPlot(cmd *cobra.Command, args []string) error {
	_, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	traj := run.Result.Trajectory

	w, err := openOutput(cmd, run.Config.Output.Path)
	if err != nil {
		return err
	}
	defer w.Close()

	if !returnMap {
		r, err := viz.NewRenderer(run.Config.Output.Renderer)
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s (%s, %s)", run.Config.Model, run.Config.Mode, run.Config.Distribution.Name)
		return r.Trajectory(w, title, traj)
	}

	points, err := analysis.ReturnMap(traj, coord, lag)
	if err != nil {
		return err
	}
	canvas := viz.ReturnMapCanvas(points, returnMapWidth, returnMapHeight)
	fmt.Fprintln(w, viz.HeaderStyle.Render(fmt.Sprintf("return map x%d (lag %d)", coord, lag)))
	fmt.Fprintln(w, canvas.String())

	if svgPath == "" {
		return nil
	}
	f, err := os.Create(svgPath)
	if err != nil {
		return errors.Wrapf(err, "create %s", svgPath)
	}
	defer f.Close()
	if braille {
		return export.WriteCanvasSVG(f, canvas, svgDotScale)
	}
	return export.WriteReturnMapSVG(f, points, svgSize, string(viz.CurrentTheme.Accent))
}

func frameInterval() time.Duration {
	if frameRate <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(frameRate)
}

func runTrack(cmd *cobra.Command, args []string) error {
	_, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	traj := run.Result.Trajectory
	title := fmt.Sprintf("%s population (%s)", run.Config.Model, run.Config.Mode)

	if run.Config.Output.Renderer == "html" {
		hists, err := viz.Histograms(traj, bins)
		if err != nil {
			return err
		}
		w, err := openOutput(cmd, run.Config.Output.Path)
		if err != nil {
			return err
		}
		defer w.Close()
		return viz.NewHTML().Tracking(w, title, hists)
	}

	tracker, err := viz.NewTracker(title, traj, bins, frameInterval())
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(tracker, tea.WithAltScreen()).Run()
	return err
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg, model, err := newExperiment(cfg).Setup()
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s live (%s, seed %d)", cfg.Model, cfg.Mode, cfg.Seed)
	live := viz.NewLive(title, model, cfg.GetInitState(), cfg.GetMode(), bins, frameInterval())

	final, err := tea.NewProgram(live, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if l, ok := final.(viz.Live); ok && l.Err() != nil {
		return l.Err()
	}
	return nil
}
