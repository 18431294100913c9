package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/distribution"
	"github.com/san-kum/rdsim/internal/experiment"
	"github.com/san-kum/rdsim/internal/export"
	"github.com/san-kum/rdsim/internal/models"
	"github.com/san-kum/rdsim/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	_, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}

	if run.Config.Output.Path != "" {
		if err := writeRecord(cmd, run); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run id: %s\n", run.ID)
	fmt.Fprintf(out, "model: %s (%s, %s)\n", run.Config.Model, run.Config.Mode, run.Config.Distribution.Name)
	fmt.Fprintf(out, "seed: %d\n", run.Config.Seed)
	fmt.Fprintf(out, "steps: %d in %v\n", run.Result.Steps, run.Elapsed)

	fmt.Fprintln(out, "\nsummary:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  coord\tmean\tvariance\tmin\tmax")
	for i, s := range run.Summary {
		fmt.Fprintf(w, "  x%d\t%.6f\t%.6f\t%.6f\t%.6f\n", i, s.Mean, s.Variance, s.Min, s.Max)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nmetrics:")
	names := make([]string, 0, len(run.Metrics))
	for name := range run.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6f\n", name, run.Metrics[name])
	}
	return nil
}

func writeRecord(cmd *cobra.Command, run *experiment.Run) error {
	w, err := openOutput(cmd, run.Config.Output.Path)
	if err != nil {
		return err
	}
	defer w.Close()
	return export.Write(w, run.Config.Output.Format, run.Record())
}

func runSeries(cmd *cobra.Command, args []string) error {
	exp, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}

	series, err := exp.Series(run, run.Config.Observable)
	if err != nil {
		return err
	}

	if run.Config.Output.Path != "" {
		w, err := openOutput(cmd, run.Config.Output.Path)
		if err != nil {
			return err
		}
		defer w.Close()
		return export.WriteCSV(w, series, nil)
	}

	r, err := viz.NewRenderer(run.Config.Output.Renderer)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s of %s (%s)", run.Config.Observable, run.Config.Model, run.Config.Mode)
	return r.Trajectory(cmd.OutOrStdout(), title, series)
}

func runAverage(cmd *cobra.Command, args []string) error {
	_, run, err := runExperiment(cmd, args)
	if err != nil {
		return err
	}
	avg, err := run.Average()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "empirical average over %d states:\n", len(run.Result.Trajectory))
	for i, v := range avg {
		fmt.Fprintf(out, "  x%d: %.6f\n", i, v)
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return errors.Wrapf(err, "open %s", args[0])
	}
	defer f.Close()

	rec, err := export.ReadJSON(f)
	if err != nil {
		return err
	}

	w, err := openOutput(cmd, outputPath)
	if err != nil {
		return err
	}
	defer w.Close()
	return export.Write(w, "csv", rec)
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	modelNames := config.PresetModels()
	if len(args) > 0 {
		modelNames = args
	}
	for _, model := range modelNames {
		presets := config.ListPresets(model)
		if len(presets) == 0 {
			fmt.Fprintf(out, "no presets for model: %s\n", model)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", model)
		for _, p := range presets {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	registry := models.NewRegistry()

	fmt.Fprintln(out, "models:")
	for _, name := range registry.Names() {
		m, err := registry.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-16s sample dim %d\n", name, m.SampleDim())
	}

	fmt.Fprintln(out, "distributions:")
	for _, name := range distribution.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}

	fmt.Fprintln(out, "observables:")
	for _, name := range experiment.NewRegistry().Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}
