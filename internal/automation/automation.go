package automation

import (
	"context"
	"maps"
	"os"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/distribution"
	"github.com/san-kum/rdsim/internal/experiment"
	"github.com/san-kum/rdsim/internal/logger"
	"github.com/san-kum/rdsim/internal/rds"
)

// Scenario defines a scripted sequence of runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep overrides the base configuration for one run. Zero fields
// keep the base value.
type ScenarioStep struct {
	Name          string                     `yaml:"name"`
	Model         string                     `yaml:"model"`
	Mode          string                     `yaml:"mode"`
	Steps         int                        `yaml:"steps"`
	Seed          uint64                     `yaml:"seed"`
	InitState     []float64                  `yaml:"init_state"`
	CaptureOmegas bool                       `yaml:"capture_omegas"`
	Distribution  *config.DistributionConfig `yaml:"distribution"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scenario %s", path)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, errors.Wrapf(err, "parse scenario %s", path)
	}
	if len(scenario.Steps) == 0 {
		return nil, errors.Newf("scenario %s has no steps", path)
	}
	return &scenario, nil
}

// Apply returns a copy of base with the step's overrides.
func (s ScenarioStep) Apply(base *config.Config) *config.Config {
	cfg := base.Clone()
	if s.Model != "" {
		cfg.Model = s.Model
	}
	if s.Mode != "" {
		cfg.Mode = s.Mode
	}
	if s.Steps > 0 {
		cfg.Steps = s.Steps
	}
	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if len(s.InitState) > 0 {
		cfg.InitState = append([]float64(nil), s.InitState...)
	}
	if s.CaptureOmegas {
		cfg.CaptureOmegas = true
	}
	if s.Distribution != nil {
		cfg.Distribution = *s.Distribution
		cfg.Distribution.Params = maps.Clone(s.Distribution.Params)
	}
	return cfg
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the runs completed so far.
func RunScenario(ctx context.Context, scenario *Scenario, base *config.Config, log logger.Logger) ([]*experiment.Run, error) {
	runs := make([]*experiment.Run, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg := step.Apply(base)
		log.Infof("scenario %s: step %d/%d %s (%s)", scenario.Name, i+1, len(scenario.Steps), step.Name, cfg.Model)

		run, err := experiment.New(cfg, log).Run(ctx)
		if err != nil {
			return runs, errors.Wrapf(err, "step %d", i+1)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// ParameterSweep runs one experiment per value of a distribution parameter
type ParameterSweep struct {
	Param string
	Min   float64
	Max   float64
	Count int
}

// SweepResult holds the outcome of one sweep point
type SweepResult struct {
	Value   float64
	Final   rds.State
	Metrics map[string]float64
}

// RunSweep executes a parameter sweep with Count evenly spaced values in
// [Min, Max]. Every point uses the same seed, picked at random when base has
// none.
func RunSweep(ctx context.Context, sweep *ParameterSweep, base *config.Config, log logger.Logger) ([]SweepResult, error) {
	if sweep.Param == "" {
		return nil, errors.New("sweep: parameter name is required")
	}
	if sweep.Count < 2 {
		return nil, errors.Newf("sweep: need at least 2 values, got %d", sweep.Count)
	}

	seed := base.Seed
	if seed == 0 {
		var err error
		if seed, err = distribution.NewSeed(); err != nil {
			return nil, err
		}
	}

	values := floats.Span(make([]float64, sweep.Count), sweep.Min, sweep.Max)
	results := make([]SweepResult, 0, sweep.Count)

	for i, v := range values {
		cfg := base.Clone()
		cfg.Seed = seed
		if cfg.Distribution.Params == nil {
			cfg.Distribution.Params = make(map[string]float64, 1)
		}
		cfg.Distribution.Params[sweep.Param] = v

		run, err := experiment.New(cfg, log).Run(ctx)
		if err != nil {
			return results, errors.Wrapf(err, "sweep %s=%v", sweep.Param, v)
		}

		traj := run.Result.Trajectory
		results = append(results, SweepResult{
			Value:   v,
			Final:   traj[len(traj)-1].Clone(),
			Metrics: run.Metrics,
		})

		log.Debugf("sweep %d/%d: %s=%.4f", i+1, sweep.Count, sweep.Param, v)
	}

	return results, nil
}
