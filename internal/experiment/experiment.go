// Package experiment wires a configuration to a model, a law and the sampler
// and returns everything produced by one run.
package experiment

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/distribution"
	"github.com/san-kum/rdsim/internal/export"
	"github.com/san-kum/rdsim/internal/logger"
	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/models"
	"github.com/san-kum/rdsim/internal/rds"
)

// Run is the outcome of one experiment.
type Run struct {
	ID      string
	Config  *config.Config
	Model   *rds.Model
	Result  *rds.Result
	Summary []metrics.Stats
	Metrics map[string]float64
	Started time.Time
	Elapsed time.Duration
}

type Experiment struct {
	cfg         *config.Config
	models      *models.Registry
	observables *Registry
	log         logger.Logger
	observers   []rds.Observer
}

func New(cfg *config.Config, log logger.Logger) *Experiment {
	return &Experiment{
		cfg:         cfg,
		models:      models.NewRegistry(),
		observables: NewRegistry(),
		log:         log,
	}
}

// AddObserver attaches an extra step observer to the next runs.
func (e *Experiment) AddObserver(o rds.Observer) {
	e.observers = append(e.observers, o)
}

func (e *Experiment) Observables() *Registry { return e.observables }

// Setup resolves the seed, the law and the model of the configuration. A
// zero seed is replaced by a random one, recorded in the returned config.
func (e *Experiment) Setup() (*config.Config, *rds.Model, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, nil, err
	}
	cfg := e.cfg.Clone()
	if cfg.Seed == 0 {
		seed, err := distribution.NewSeed()
		if err != nil {
			return nil, nil, err
		}
		cfg.Seed = seed
	}

	law, err := distribution.New(cfg.Distribution.Spec(), cfg.Seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "distribution")
	}
	model, err := e.models.Build(cfg.Model, law)
	if err != nil {
		return nil, nil, err
	}
	return cfg, model, nil
}

func (e *Experiment) Run(ctx context.Context) (*Run, error) {
	cfg, model, err := e.Setup()
	if err != nil {
		return nil, err
	}

	sampler := rds.New(model)
	ms := metrics.Defaults()
	for _, m := range ms {
		sampler.AddObserver(m)
	}
	for _, o := range e.observers {
		sampler.AddObserver(o)
	}

	id := uuid.NewString()
	e.log.Infof("run %s: model=%s mode=%s steps=%d dim=%d law=%s seed=%d",
		id, cfg.Model, cfg.GetMode(), cfg.Steps, len(cfg.InitState), cfg.Distribution.Name, cfg.Seed)

	start := time.Now()
	res, err := sampler.Run(ctx, cfg.Steps, cfg.GetInitState(), rds.Options{
		Mode:          cfg.GetMode(),
		CaptureOmegas: cfg.CaptureOmegas,
	})
	if err != nil {
		e.log.Errorf("run %s failed: %v", id, err)
		return nil, errors.Wrapf(err, "run %s", id)
	}
	elapsed := time.Since(start)

	summary, err := metrics.Summarize(res.Trajectory)
	if err != nil {
		return nil, err
	}

	h, m, s := logger.ParseTime(elapsed)
	e.log.Noticef("run %s done: %d states in %d:%02d:%02d (%v)", id, len(res.Trajectory), h, m, s, elapsed)

	return &Run{
		ID:      id,
		Config:  cfg,
		Model:   model,
		Result:  res,
		Summary: summary,
		Metrics: metrics.Collect(ms),
		Started: start,
		Elapsed: elapsed,
	}, nil
}

// Series applies the named observable to the run's trajectory.
func (e *Experiment) Series(run *Run, name string) (rds.Trajectory, error) {
	o, err := e.observables.Get(name)
	if err != nil {
		return nil, err
	}
	return o.Apply(run.Result)
}

// Average is the per-coordinate empirical average of the run.
func (r *Run) Average() ([]float64, error) {
	return rds.EmpiricalAverage(r.Result.Trajectory)
}

// Record converts the run for export.
func (r *Run) Record() *export.Record {
	rec := &export.Record{
		ID:           r.ID,
		Model:        r.Config.Model,
		Distribution: r.Config.Distribution.Name,
		Seed:         r.Config.Seed,
		Timestamp:    r.Started,
		Metrics:      r.Metrics,
	}
	rec.SetResult(r.Result)
	return rec
}
