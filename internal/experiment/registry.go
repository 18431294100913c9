package experiment

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

// Observable is a named scalar function applied to every coordinate of a
// trajectory. Exactly one of Func and OmegaFunc is set; OmegaFunc also sees
// the ω that produced the state and needs captured draws.
type Observable struct {
	Name      string
	Func      rds.Observable
	OmegaFunc rds.OmegaObservable
}

// Registry maps observable names to their definitions.
type Registry struct {
	observables map[string]Observable
}

func NewRegistry() *Registry {
	r := &Registry{observables: make(map[string]Observable)}

	r.Register(Observable{Name: "identity", Func: func(x float64) float64 { return x }})
	r.Register(Observable{Name: "square", Func: func(x float64) float64 { return x * x }})
	r.Register(Observable{Name: "cos", Func: func(x float64) float64 { return math.Cos(2 * math.Pi * x) }})
	r.Register(Observable{Name: "indicator_lower_half", Func: func(x float64) float64 {
		if x < 0.5 {
			return 1
		}
		return 0
	}})
	r.Register(Observable{Name: "omega_shift", OmegaFunc: func(w rds.Omega, x float64) float64 {
		return rds.Wrap(x - w[0])
	}})

	return r
}

func (r *Registry) Register(o Observable) {
	r.observables[o.Name] = o
}

func (r *Registry) Get(name string) (Observable, error) {
	o, ok := r.observables[name]
	if !ok {
		return Observable{}, errors.Newf("unknown observable: %s", name)
	}
	return o, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.observables))
	for name := range r.observables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply evaluates o along the run's trajectory. Observables of ω read
// Result.Omegas for quenched runs and Result.Environment for annealed ones.
func (o Observable) Apply(res *rds.Result) (rds.Trajectory, error) {
	if o.Func != nil {
		return rds.TimeSeries(res.Trajectory, o.Func), nil
	}
	switch {
	case res.Mode == rds.Quenched && res.Omegas != nil:
		return rds.TimeSeriesOmega(res.Trajectory, res.Omegas, o.OmegaFunc)
	case res.Mode == rds.Annealed && res.Environment != nil:
		return rds.TimeSeriesEnvironment(res.Trajectory, res.Environment, o.OmegaFunc)
	default:
		return nil, errors.Newf("observable %s needs captured omegas", o.Name)
	}
}
