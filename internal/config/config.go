package config

import (
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rdsim/internal/distribution"
	"github.com/san-kum/rdsim/internal/rds"
)

const (
	DefaultModel    = "rotation"
	DefaultSteps    = 100
	DefaultState    = 0.5
	DefaultLogLevel = "INFO"

	// EnvPrefix prefixes every environment override, e.g. RDSIM_STEPS.
	EnvPrefix = "RDSIM_"
)

type Config struct {
	Model         string             `yaml:"model" env:"MODEL"`
	Mode          string             `yaml:"mode" env:"MODE"`
	Steps         int                `yaml:"steps" env:"STEPS"`
	Seed          uint64             `yaml:"seed" env:"SEED"`
	InitState     []float64          `yaml:"init_state" env:"INIT_STATE"`
	CaptureOmegas bool               `yaml:"capture_omegas" env:"CAPTURE_OMEGAS"`
	Distribution  DistributionConfig `yaml:"distribution" envPrefix:"DIST_"`
	Observable    string             `yaml:"observable" env:"OBSERVABLE"`
	Output        OutputConfig       `yaml:"output" envPrefix:"OUTPUT_"`
	LogLevel      string             `yaml:"log_level" env:"LOG_LEVEL"`
}

type DistributionConfig struct {
	Name          string             `yaml:"name" env:"NAME"`
	Params        map[string]float64 `yaml:"params,omitempty" env:"PARAMS"`
	PrecisionBits uint               `yaml:"precision_bits,omitempty" env:"PRECISION_BITS"`
}

type OutputConfig struct {
	Format   string `yaml:"format" env:"FORMAT"`
	Path     string `yaml:"path" env:"PATH"`
	Renderer string `yaml:"renderer" env:"RENDERER"`
}

var (
	outputFormats = []string{"", "csv", "json"}
	renderers     = []string{"", "ascii", "html"}
)

func DefaultConfig() *Config {
	return &Config{
		Model:     DefaultModel,
		Mode:      rds.Quenched.String(),
		Steps:     DefaultSteps,
		InitState: []float64{DefaultState},
		Distribution: DistributionConfig{
			Name: "uniform",
		},
		Observable: "identity",
		Output: OutputConfig{
			Renderer: "ascii",
		},
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides cfg from RDSIM_* environment variables. When dotenv is
// non-empty and the file exists it is loaded first; variables already set in
// the process environment win over the file.
func ApplyEnv(cfg *Config, dotenv string) error {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return errors.Wrapf(err, "load %s", dotenv)
			}
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Validate reports the first setting a run cannot start with. Whether the
// model and observable names exist is left to their registries.
func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("config: model is required")
	}
	if _, err := rds.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, "config")
	}
	if c.Steps <= 0 {
		return errors.Newf("config: steps must be positive, got %d", c.Steps)
	}
	if len(c.InitState) == 0 {
		return errors.New("config: init_state must have at least one coordinate")
	}
	for i, v := range c.InitState {
		if !rds.UnitInterval.Contains(v) {
			return errors.Newf("config: init_state[%d]=%v not in %v", i, v, rds.UnitInterval)
		}
	}
	if !slices.Contains(outputFormats, c.Output.Format) {
		return errors.Newf("config: unknown output format %q", c.Output.Format)
	}
	if !slices.Contains(renderers, c.Output.Renderer) {
		return errors.Newf("config: unknown renderer %q", c.Output.Renderer)
	}
	return nil
}

func (c *Config) GetInitState() rds.State {
	if len(c.InitState) == 0 {
		return rds.State{DefaultState}
	}
	return rds.State(c.InitState).Clone()
}

func (c *Config) GetMode() rds.Mode {
	m, err := rds.ParseMode(c.Mode)
	if err != nil {
		return rds.Quenched
	}
	return m
}

func (d DistributionConfig) Spec() distribution.Spec {
	return distribution.Spec{
		Name:          d.Name,
		Params:        d.Params,
		PrecisionBits: d.PrecisionBits,
	}
}

func (c *Config) Clone() *Config {
	out := *c
	out.InitState = slices.Clone(c.InitState)
	if c.Distribution.Params != nil {
		out.Distribution.Params = make(map[string]float64, len(c.Distribution.Params))
		for k, v := range c.Distribution.Params {
			out.Distribution.Params[k] = v
		}
	}
	return &out
}
