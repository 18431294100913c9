package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile string
	presetName string
	dotenvFile string
	logLevel   string
	seed       uint64
	steps      int
	mode       string
	initState  []float64
	distName   string
	distParams map[string]string
	precision  uint
	capture    bool
	outputPath string
	format     string
	renderer   string
	observable string
	// Histogram and replay settings for track and live.
	bins      int
	frameRate int
	// Analysis settings.
	coord     int
	lag       int
	returnMap bool
	svgPath   string
	braille   bool
	stepSize  float64
	sepDelta  float64
	// Sampling settings.
	drawCount int
	normalize bool
	fromCSV   string
	ecdfSize  int
	// Bifurcation sweep.
	sweepLo        float64
	sweepHi        float64
	sweepSteps     int
	sweepTransient int
	sweepRecord    int
	// Parameter sweep and grid search.
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepCount int
	gridSpecs  []string
	metricName string
	maximize   bool
)

// main builds the rdsim command tree and executes it, exiting with status 1
// when a command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rdsim",
		Short:        "random dynamical system simulator",
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&presetName, "preset", "", "use preset configuration")
	pf.StringVar(&dotenvFile, "env-file", ".env", "dotenv file read before RDSIM_* overrides")
	pf.StringVar(&logLevel, "log-level", "", "log level (DEBUG, INFO, NOTICE, WARNING, ERROR)")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	pf.IntVar(&steps, "steps", 100, "number of iterations")
	pf.StringVar(&mode, "mode", "quenched", "noise mode: quenched or annealed")
	pf.Float64SliceVar(&initState, "x0", []float64{0.5}, "initial state, one value per coordinate")
	pf.StringVar(&distName, "dist", "uniform", "distribution of ω")
	pf.StringToStringVar(&distParams, "param", nil, "distribution parameter, e.g. --param min=0 --param max=0.1")
	pf.UintVar(&precision, "precision", 0, "mantissa bits of the sampled values (0 for float64)")
	pf.BoolVar(&capture, "capture", false, "capture the sampled ω values")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a simulation and print its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addOutputFlags(runCmd)

	seriesCmd := &cobra.Command{
		Use:   "series [model]",
		Short: "plot an observable along a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSeries,
	}
	seriesCmd.Flags().StringVar(&observable, "observable", "identity", "observable applied to each coordinate")
	addOutputFlags(seriesCmd)

	averageCmd := &cobra.Command{
		Use:   "average [model]",
		Short: "empirical average of each coordinate",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAverage,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [model]",
		Short: "plot the trajectory of a run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().StringVar(&renderer, "renderer", "", "ascii or html")
	plotCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	plotCmd.Flags().BoolVar(&returnMap, "return-map", false, "plot (x_k, x_k+lag) instead of the trajectory")
	plotCmd.Flags().IntVar(&coord, "coord", 0, "coordinate of the return map")
	plotCmd.Flags().IntVar(&lag, "lag", 1, "lag of the return map")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write the return map as svg")
	plotCmd.Flags().BoolVar(&braille, "braille", false, "draw the svg from the braille canvas dots")

	trackCmd := &cobra.Command{
		Use:   "track [model]",
		Short: "replay the histogram of the population step by step",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrack,
	}
	trackCmd.Flags().IntVar(&bins, "bins", 10, "histogram bins over [0,1]")
	trackCmd.Flags().IntVar(&frameRate, "fps", 10, "frame rate")
	trackCmd.Flags().StringVar(&renderer, "renderer", "", "ascii (interactive) or html")
	trackCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file for html")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run a population with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&bins, "bins", 10, "histogram bins over [0,1]")
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "frame rate")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "draw values from a distribution",
		Args:  cobra.NoArgs,
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVarP(&drawCount, "count", "n", 10, "number of draws")
	sampleCmd.Flags().BoolVar(&normalize, "normalize", false, "rescale the draws onto [0,1]")
	sampleCmd.Flags().StringVar(&fromCSV, "from-csv", "", "draw from the empirical law of a coordinate of a csv trajectory")
	sampleCmd.Flags().IntVar(&coord, "coord", 0, "coordinate read from the csv")
	sampleCmd.Flags().IntVar(&ecdfSize, "points", 256, "points kept in the empirical distribution function")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov [model]",
		Short: "estimate the Lyapunov exponent along a quenched path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().IntVar(&coord, "coord", 0, "coordinate to follow")
	lyapunovCmd.Flags().Float64Var(&stepSize, "h", 1e-7, "finite difference step")
	lyapunovCmd.Flags().Float64Var(&sepDelta, "d0", 1e-8, "initial separation of the twin trajectory")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [model]",
		Short: "power spectrum of a coordinate",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().IntVar(&coord, "coord", 0, "coordinate to transform")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation [model]",
		Short: "sweep a frozen ω and plot the visited states",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&sweepLo, "lo", 2.5, "lowest ω")
	bifurcationCmd.Flags().Float64Var(&sweepHi, "hi", 4, "highest ω")
	bifurcationCmd.Flags().IntVar(&sweepSteps, "params", 70, "number of ω values")
	bifurcationCmd.Flags().IntVar(&sweepTransient, "transient", 500, "iterations discarded per ω")
	bifurcationCmd.Flags().IntVar(&sweepRecord, "record", 200, "iterations recorded per ω")

	convertCmd := &cobra.Command{
		Use:   "convert [run.json]",
		Short: "convert an exported json run to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted sequence of experiments",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run one experiment per value of a distribution parameter",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "sweep-param", "max", "distribution parameter to vary")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.1, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1, "last value")
	sweepCmd.Flags().IntVar(&sweepCount, "count", 10, "number of values")

	searchCmd := &cobra.Command{
		Use:   "search [model]",
		Short: "grid search distribution parameters for the best metric",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().StringArrayVar(&gridSpecs, "grid", nil, "parameter grid as name=lo:hi:n, repeatable")
	searchCmd.Flags().StringVar(&metricName, "metric", "synchrony", "metric to optimize")
	searchCmd.Flags().BoolVar(&maximize, "maximize", false, "maximize instead of minimize")

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models, distributions and observables",
		Args:  cobra.NoArgs,
		RunE:  listModels,
	}

	rootCmd.AddCommand(runCmd, seriesCmd, averageCmd, plotCmd, trackCmd, liveCmd, sampleCmd,
		lyapunovCmd, spectrumCmd, bifurcationCmd, convertCmd, scenarioCmd, sweepCmd, searchCmd,
		presetsCmd, modelsCmd)
	return rootCmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the run to a file")
	cmd.Flags().StringVar(&format, "format", "", "export format: csv or json")
}
