package analysis

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/rds"
)

// LyapunovExponent estimates the Lyapunov exponent of coordinate coord along
// a quenched trajectory, given the omegas that produced it:
//
//	λ ≈ (1/n) Σ ln |∂f/∂x(ω_k, x_k)|
//
// The derivative is a central difference with step h on the unwrapped map.
// A step where the derivative vanishes makes the result -Inf.
func LyapunovExponent(model *rds.Model, traj rds.Trajectory, omegas []rds.Omega, coord int, h float64) (float64, error) {
	if err := checkPath(traj, omegas, coord); err != nil {
		return 0, err
	}
	if !(h > 0) {
		return 0, errors.Newf("lyapunov: step h must be positive, got %v", h)
	}

	sumLog := 0.0
	for k, w := range omegas {
		x := traj[k][coord]
		d := (model.Map(w, x+h) - model.Map(w, x-h)) / (2 * h)
		sumLog += math.Log(math.Abs(d))
	}
	return sumLog / float64(len(omegas)), nil
}

// SeparationExponent follows x0 and x0+d0 under the same omegas and averages
// the log growth of their circular distance per step, renormalizing the
// companion back to distance d0 after each step.
func SeparationExponent(model *rds.Model, x0 float64, omegas []rds.Omega, d0 float64) (float64, error) {
	if len(omegas) == 0 {
		return 0, errors.Wrap(rds.ErrShapeMismatch, "separation: no omegas")
	}
	if !(d0 > 0) || d0 >= 0.5 {
		return 0, errors.Newf("separation: perturbation must be in (0, 0.5), got %v", d0)
	}

	x := x0
	sumLog := 0.0
	count := 0
	for _, w := range omegas {
		xp := rds.Wrap(model.Map(w, x+d0))
		x = rds.Wrap(model.Map(w, x))

		sep := metrics.CircleDistance(x, xp)
		if sep > 0 {
			sumLog += math.Log(sep / d0)
			count++
		}
	}

	if count == 0 {
		return math.Inf(-1), nil
	}
	return sumLog / float64(count), nil
}

func checkPath(traj rds.Trajectory, omegas []rds.Omega, coord int) error {
	if len(traj) < 2 {
		return errors.Wrap(rds.ErrShapeMismatch, "need at least one step")
	}
	if len(omegas) != len(traj)-1 {
		return &rds.ShapeError{What: "omegas", Want: len(traj) - 1, Got: len(omegas)}
	}
	if coord < 0 || coord >= len(traj[0]) {
		return errors.Newf("coordinate %d out of range for dimension %d", coord, len(traj[0]))
	}
	return nil
}
