package rds

import (
	"context"
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// Mode selects how ω is shared between coordinates.
type Mode int

const (
	// Quenched shares one ω per step across all coordinates.
	Quenched Mode = iota
	// Annealed draws an independent ω per coordinate per step.
	Annealed
)

func (m Mode) String() string {
	switch m {
	case Quenched:
		return "quenched"
	case Annealed:
		return "annealed"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "quenched":
		return Quenched, nil
	case "annealed":
		return Annealed, nil
	default:
		return 0, errors.Newf("unknown mode: %s (want quenched or annealed)", s)
	}
}

type Options struct {
	Mode Mode
	// CaptureOmegas records the draws alongside the trajectory: Result.Omegas
	// in quenched mode, Result.Environment in annealed mode.
	CaptureOmegas bool
}

type Result struct {
	Trajectory Trajectory
	// Omegas[k-1] produced step k (quenched capture only).
	Omegas []Omega
	// Environment[k-1][j] produced coordinate j of step k (annealed capture only).
	Environment [][]Omega
	Mode        Mode
	Steps       int
}

type Sampler struct {
	model     *Model
	observers []Observer
}

func New(model *Model) *Sampler {
	return &Sampler{
		model:     model,
		observers: make([]Observer, 0),
	}
}

func (s *Sampler) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Sample runs a single trajectory without observers or cancellation.
func Sample(model *Model, n int, x0 State, opts Options) (*Result, error) {
	return New(model).Run(context.Background(), n, x0, opts)
}

// Run evolves x0 for n steps. The returned trajectory holds n+1 states and
// shares no memory with x0.
func (s *Sampler) Run(ctx context.Context, n int, x0 State, opts Options) (*Result, error) {
	if s.model == nil {
		return nil, &ModelError{Field: "model", Reason: "missing"}
	}
	if n <= 0 {
		return nil, &IterationCountError{N: n}
	}
	if err := s.model.validateInit(x0); err != nil {
		return nil, err
	}

	switch opts.Mode {
	case Quenched:
		return s.runQuenched(ctx, n, x0, opts.CaptureOmegas)
	case Annealed:
		return s.runAnnealed(ctx, n, x0, opts.CaptureOmegas)
	default:
		return nil, errors.Newf("rds: unsupported mode %v", opts.Mode)
	}
}

func (s *Sampler) runQuenched(ctx context.Context, n int, x0 State, capture bool) (*Result, error) {
	omegas, err := s.model.drawOmegas(n)
	if err != nil {
		return nil, err
	}

	result := s.newResult(n, x0, Quenched)
	x := result.Trajectory[0]

	for k := 1; k <= n; k++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "rds: canceled at step %d", k)
		default:
		}

		w := omegas[k-1]
		next := make(State, len(x))
		for i, xi := range x {
			v, err := s.apply(k, i, w, xi)
			if err != nil {
				return nil, err
			}
			next[i] = v
		}
		x = next
		s.record(result, k, x)
	}

	if capture {
		result.Omegas = omegas
	}
	return result, nil
}

func (s *Sampler) runAnnealed(ctx context.Context, n int, x0 State, capture bool) (*Result, error) {
	result := s.newResult(n, x0, Annealed)
	if capture {
		result.Environment = make([][]Omega, 0, n)
	}
	x := result.Trajectory[0]

	for k := 1; k <= n; k++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "rds: canceled at step %d", k)
		default:
		}

		env, err := s.model.drawOmegas(len(x))
		if err != nil {
			return nil, err
		}
		next := make(State, len(x))
		for j, xj := range x {
			v, err := s.apply(k, j, env[j], xj)
			if err != nil {
				return nil, err
			}
			next[j] = v
		}
		x = next
		s.record(result, k, x)
		if capture {
			result.Environment = append(result.Environment, env)
		}
	}

	return result, nil
}

func (s *Sampler) newResult(n int, x0 State, mode Mode) *Result {
	result := &Result{
		Trajectory: make(Trajectory, 0, n+1),
		Mode:       mode,
	}
	x := x0.Clone()
	result.Trajectory = append(result.Trajectory, x)
	for _, obs := range s.observers {
		obs.OnStep(0, x)
	}
	return result
}

func (s *Sampler) record(result *Result, k int, x State) {
	result.Trajectory = append(result.Trajectory, x)
	result.Steps = k
	for _, obs := range s.observers {
		obs.OnStep(k, x)
	}
}

// apply evaluates the map for one coordinate and wraps the result.
// Panics raised by the map are left to the caller.
func (s *Sampler) apply(step, coord int, w Omega, x float64) (float64, error) {
	v := s.model.Map(w, x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &StepError{Step: step, Coordinate: coord, Value: v, Wrapped: ErrNonFinite}
	}
	return Wrap(v), nil
}
