package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/experiment"
	"github.com/san-kum/rdsim/internal/logger"
)

// loadConfig layers, lowest first: defaults, the preset, the config file,
// RDSIM_* variables and finally the flags set on the command line. A model
// given as argument always wins.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Model = args[0]
	}

	if presetName != "" {
		p := config.GetPreset(cfg.Model, presetName)
		if p == nil {
			return nil, errors.Newf("unknown preset %s for %s (available: %v)",
				presetName, cfg.Model, config.ListPresets(cfg.Model))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(cfg, dotenvFile); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Model = args[0]
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("x0") {
		cfg.InitState = append([]float64(nil), initState...)
	}
	if flags.Changed("dist") {
		cfg.Distribution.Name = distName
		cfg.Distribution.Params = nil
	}
	if flags.Changed("param") {
		params, err := parseParams(distParams)
		if err != nil {
			return err
		}
		cfg.Distribution.Params = params
	}
	if flags.Changed("precision") {
		cfg.Distribution.PrecisionBits = precision
	}
	if flags.Changed("capture") {
		cfg.CaptureOmegas = capture
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output.Path = outputPath
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Lookup("renderer") != nil && flags.Changed("renderer") {
		cfg.Output.Renderer = renderer
	}
	if flags.Lookup("observable") != nil && flags.Changed("observable") {
		cfg.Observable = observable
	}
	return nil
}

func parseParams(raw map[string]string) (map[string]float64, error) {
	params := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "param %s", k)
		}
		params[k] = f
	}
	return params, nil
}

func newExperiment(cfg *config.Config) *experiment.Experiment {
	return experiment.New(cfg, logger.NewLogger(cfg.LogLevel, "rdsim"))
}

// runExperiment runs the configuration of cmd until done or interrupted.
func runExperiment(cmd *cobra.Command, args []string) (*experiment.Experiment, *experiment.Run, error) {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	return runConfigured(cfg)
}

func runConfigured(cfg *config.Config) (*experiment.Experiment, *experiment.Run, error) {
	exp := newExperiment(cfg)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run, err := exp.Run(ctx)
	if err != nil {
		return nil, nil, err
	}
	return exp, run, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns the file at path, or the command's output when path is
// empty.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	return f, nil
}
