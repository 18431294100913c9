package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/rdsim/internal/analysis"
	"github.com/san-kum/rdsim/internal/distribution"
	"github.com/san-kum/rdsim/internal/export"
	"github.com/san-kum/rdsim/internal/models"
	"github.com/san-kum/rdsim/internal/rds"
	"github.com/san-kum/rdsim/internal/viz"
)

const (
	plotWidth  = 70
	plotHeight = 12
)

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	s := cfg.Seed
	if s == 0 {
		if s, err = distribution.NewSeed(); err != nil {
			return err
		}
	}

	var p distribution.Provider
	if fromCSV != "" {
		emp, err := empiricalFromCSV(fromCSV, coord, ecdfSize, s)
		if err != nil {
			return err
		}
		p = emp
	} else {
		law, err := distribution.New(cfg.Distribution.Spec(), s)
		if err != nil {
			return err
		}
		p = law
	}

	var values []float64
	if normalize {
		if values, err = distribution.SampleNormalized(p, drawCount); err != nil {
			return err
		}
	} else {
		if drawCount <= 0 {
			return errors.Newf("count must be positive, got %d", drawCount)
		}
		values = p.Draw(drawCount)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s, seed %d, precision %d bits\n", p.Name(), s, p.Precision().Bits)
	for _, v := range values {
		fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
	}
	fmt.Fprintln(out, viz.SparklineChart(values, plotWidth))
	return nil
}

func empiricalFromCSV(path string, coord, points int, seed uint64) (*distribution.Empirical, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	traj, err := export.ReadCSV(f)
	if err != nil {
		return nil, err
	}
	data, err := analysis.CoordinateSeries(traj, coord)
	if err != nil {
		return nil, err
	}
	return distribution.NewEmpirical(data, points, seed)
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	// Both estimates replay the ω path, which only a quenched capture records.
	cfg.Mode = rds.Quenched.String()
	cfg.CaptureOmegas = true

	_, run, err := runConfigured(cfg)
	if err != nil {
		return err
	}
	traj := run.Result.Trajectory

	lambda, err := analysis.LyapunovExponent(run.Model, traj, run.Result.Omegas, coord, stepSize)
	if err != nil {
		return err
	}
	x0, err := analysis.CoordinateSeries(traj[:1], coord)
	if err != nil {
		return err
	}
	sep, err := analysis.SeparationExponent(run.Model, x0[0], run.Result.Omegas, sepDelta)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "lyapunov exponent (derivative): %.6f\n", lambda)
	fmt.Fprintf(out, "lyapunov exponent (separation): %.6f\n", sep)
	if lambda > 0 {
		fmt.Fprintln(out, "nearby states diverge")
	} else {
		fmt.Fprintln(out, "nearby states synchronize")
	}
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	_, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	series, err := analysis.CoordinateSeries(run.Result.Trajectory, coord)
	if err != nil {
		return err
	}

	ps := analysis.PowerSpectrum(series)
	out := cmd.OutOrStdout()
	if len(ps) > 1 {
		graph := asciigraph.Plot(ps[1:],
			asciigraph.Height(plotHeight),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(fmt.Sprintf("power spectrum of x%d", coord)),
		)
		fmt.Fprintln(out, graph)
	}
	fmt.Fprintf(out, "dominant frequency: %.4f cycles/step\n", analysis.DominantFrequency(series))
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	m, err := models.NewRegistry().Get(cfg.Model)
	if err != nil {
		return err
	}

	data, err := analysis.BifurcationDiagram(m.Update, m.SampleDim(), analysis.BifurcationConfig{
		Lo:        sweepLo,
		Hi:        sweepHi,
		Steps:     sweepSteps,
		X0:        cfg.InitState[0],
		Transient: sweepTransient,
		Record:    sweepRecord,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.HeaderStyle.Render(fmt.Sprintf("%s: ω from %g to %g", cfg.Model, sweepLo, sweepHi)))
	fmt.Fprint(out, analysis.BifurcationToASCII(data, plotWidth, 2*plotHeight))
	return nil
}
