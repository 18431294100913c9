package metrics

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rdsim/internal/rds"
)

// Stats summarizes one coordinate of a trajectory over time.
type Stats struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// Summarize computes Stats for every coordinate of traj.
func Summarize(traj rds.Trajectory) ([]Stats, error) {
	if len(traj) == 0 {
		return nil, errors.Wrap(rds.ErrShapeMismatch, "summarize: empty trajectory")
	}
	dim := len(traj[0])
	out := make([]Stats, dim)
	col := make([]float64, len(traj))
	for i := 0; i < dim; i++ {
		for k, x := range traj {
			if len(x) != dim {
				return nil, &rds.ShapeError{What: "state length", Want: dim, Got: len(x)}
			}
			col[k] = x[i]
		}
		mean, variance := stat.MeanVariance(col, nil)
		if len(col) < 2 {
			variance = 0
		}
		out[i] = Stats{
			Mean:     mean,
			Variance: variance,
			Min:      floats.Min(col),
			Max:      floats.Max(col),
		}
	}
	return out, nil
}
