package rds

import (
	"fmt"
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Trajectory is an ordered sequence of states, index 0 being the initial state.
type Trajectory []State

func (t Trajectory) Clone() Trajectory {
	c := make(Trajectory, len(t))
	for i, s := range t {
		c[i] = s.Clone()
	}
	return c
}

// Dim returns the number of coordinates of the first state.
func (t Trajectory) Dim() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Omega is one realization of the random parameter. Its length is the
// sample-space dimension of the model that drew it.
type Omega []float64

// UpdateFunc maps a coordinate x under the random parameter omega.
// The parameter always comes first.
type UpdateFunc func(omega Omega, x float64) float64

// Observable is applied element-wise to the states of a trajectory.
type Observable func(x float64) float64

// OmegaObservable is an observable that also sees the ω which produced the state.
type OmegaObservable func(omega Omega, x float64) float64

// Law is the source of i.i.d. scalar draws a model takes ω from.
type Law interface {
	Draw(n int) []float64
}

type Observer interface {
	OnStep(step int, x State)
}

// Interval is the closed interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

var UnitInterval = Interval{Lo: 0, Hi: 1}

func NewInterval(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return Interval{}, &ModelError{Field: "interval", Reason: fmt.Sprintf("lo %v must not exceed hi %v", lo, hi)}
	}
	return Interval{Lo: lo, Hi: hi}, nil
}

func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Lo, iv.Hi)
}

// Domain records, per coordinate, whether the coordinate wraps modulo 1.
// The sampler wraps every coordinate and does not consult it.
type Domain struct {
	Dim    int
	Modulo []bool
}

func NewDomain(dim int, modulo []bool) (Domain, error) {
	if dim <= 0 {
		return Domain{}, &ModelError{Field: "domain", Reason: fmt.Sprintf("dimension must be positive, got %d", dim)}
	}
	if len(modulo) != dim {
		return Domain{}, &ShapeError{What: "domain modulo flags", Want: dim, Got: len(modulo)}
	}
	flags := make([]bool, dim)
	copy(flags, modulo)
	return Domain{Dim: dim, Modulo: flags}, nil
}

// Wraps reports whether coordinate i wraps modulo 1.
func (d Domain) Wraps(i int) bool {
	return i >= 0 && i < len(d.Modulo) && d.Modulo[i]
}

// Wrap reduces v modulo 1 into [0, 1). Negative values wrap upward.
func Wrap(v float64) float64 {
	r := math.Mod(v, 1)
	if r < 0 {
		r++
	}
	// r+1 can round up to exactly 1 for tiny negative r
	// r == 0 also catches -0, which would print as "-0"
	if r >= 1 || r == 0 {
		return 0
	}
	return r
}
