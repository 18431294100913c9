package models

import (
	"math"

	"github.com/san-kum/rdsim/internal/rds"
)

// Map is a random update map x' = f(ω, x) on the unit circle.
type Map interface {
	Name() string
	SampleDim() int
	Update(w rds.Omega, x float64) float64
}

// Identity ignores ω.
type Identity struct{}

func NewIdentity() *Identity { return &Identity{} }

func (m *Identity) Name() string   { return "identity" }
func (m *Identity) SampleDim() int { return 1 }

func (m *Identity) Update(w rds.Omega, x float64) float64 {
	return x
}

// Rotation is the random circle rotation x + ω.
type Rotation struct{}

func NewRotation() *Rotation { return &Rotation{} }

func (m *Rotation) Name() string   { return "rotation" }
func (m *Rotation) SampleDim() int { return 1 }

func (m *Rotation) Update(w rds.Omega, x float64) float64 {
	return x + w[0]
}

// Doubling is the perturbed doubling map Factor·x + ω.
type Doubling struct {
	Factor float64
}

func NewDoubling() *Doubling { return &Doubling{Factor: 2} }

func (m *Doubling) Name() string   { return "doubling" }
func (m *Doubling) SampleDim() int { return 1 }

func (m *Doubling) Update(w rds.Omega, x float64) float64 {
	return m.Factor*x + w[0]
}

// Logistic draws its growth rate each step: ω·x·(1-x). Rates in [0,4] keep
// the state in [0,1].
type Logistic struct{}

func NewLogistic() *Logistic { return &Logistic{} }

func (m *Logistic) Name() string   { return "logistic" }
func (m *Logistic) SampleDim() int { return 1 }

func (m *Logistic) Update(w rds.Omega, x float64) float64 {
	return w[0] * x * (1 - x)
}

// Tent has a random slope: ω·min(x, 1-x).
type Tent struct{}

func NewTent() *Tent { return &Tent{} }

func (m *Tent) Name() string   { return "tent" }
func (m *Tent) SampleDim() int { return 1 }

func (m *Tent) Update(w rds.Omega, x float64) float64 {
	return w[0] * math.Min(x, 1-x)
}

// Multiplicative scales the state by ω.
type Multiplicative struct{}

func NewMultiplicative() *Multiplicative { return &Multiplicative{} }

func (m *Multiplicative) Name() string   { return "multiplicative" }
func (m *Multiplicative) SampleDim() int { return 1 }

func (m *Multiplicative) Update(w rds.Omega, x float64) float64 {
	return w[0] * x
}

// Circle is the random Arnold circle map x + ω₀ + ω₁/(2π)·sin(2πx), with a
// two dimensional ω.
type Circle struct{}

func NewCircle() *Circle { return &Circle{} }

func (m *Circle) Name() string   { return "circle" }
func (m *Circle) SampleDim() int { return 2 }

func (m *Circle) Update(w rds.Omega, x float64) float64 {
	return x + w[0] + w[1]/(2*math.Pi)*math.Sin(2*math.Pi*x)
}
