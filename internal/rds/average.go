package rds

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// EmpiricalAverage returns the mean of each coordinate over all states.
// Every state must have the length of the first one.
func EmpiricalAverage(traj Trajectory) ([]float64, error) {
	if len(traj) == 0 {
		return nil, &ShapeError{What: "trajectory length", Want: 1, Got: 0}
	}
	dim := len(traj[0])
	for i, x := range traj {
		if len(x) != dim {
			return nil, &ShapeError{What: fmt.Sprintf("state %d width", i), Want: dim, Got: len(x)}
		}
	}

	avg := make([]float64, dim)
	col := make([]float64, len(traj))
	for j := 0; j < dim; j++ {
		for i, x := range traj {
			col[i] = x[j]
		}
		avg[j] = stat.Mean(col, nil)
	}
	return avg, nil
}
