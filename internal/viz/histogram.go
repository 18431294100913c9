package viz

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rdsim/internal/rds"
)

// Histogram counts the coordinates of one state in equal-width bins over
// [0,1]. Edges has len(Counts)+1 entries.
type Histogram struct {
	Step   int
	Edges  []float64
	Counts []float64
}

// Fractions returns the counts normalized to sum to one.
func (h Histogram) Fractions() []float64 {
	out := make([]float64, len(h.Counts))
	total := floats.Sum(h.Counts)
	if total == 0 {
		return out
	}
	for i, c := range h.Counts {
		out[i] = c / total
	}
	return out
}

// Histograms bins every state of traj into bins equal-width buckets over
// [0,1]. A value of exactly 1 falls in the last bucket.
func Histograms(traj rds.Trajectory, bins int) ([]Histogram, error) {
	if bins <= 0 {
		return nil, errors.Newf("histogram: bins must be positive, got %d", bins)
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, 0, 1)

	// stat.Histogram excludes the upper edge.
	dividers := make([]float64, len(edges))
	copy(dividers, edges)
	dividers[bins] = math.Nextafter(1, 2)

	out := make([]Histogram, len(traj))
	for k, x := range traj {
		sorted := make([]float64, len(x))
		copy(sorted, x)
		sort.Float64s(sorted)
		if len(sorted) > 0 && (sorted[0] < 0 || sorted[len(sorted)-1] > 1) {
			return nil, errors.Wrapf(rds.ErrPhaseSpaceDomain, "histogram: step %d has values outside [0,1]", k)
		}
		out[k] = Histogram{
			Step:   k,
			Edges:  edges,
			Counts: stat.Histogram(nil, dividers, sorted, nil),
		}
	}
	return out, nil
}

// Columns reshapes a trajectory into one series per coordinate.
func Columns(traj rds.Trajectory) ([][]float64, error) {
	if len(traj) == 0 {
		return [][]float64{}, nil
	}
	dim := len(traj[0])
	cols := make([][]float64, dim)
	for i := range cols {
		cols[i] = make([]float64, len(traj))
	}
	for k, x := range traj {
		if len(x) != dim {
			return nil, &rds.ShapeError{What: "state length", Want: dim, Got: len(x)}
		}
		for i, v := range x {
			cols[i][k] = v
		}
	}
	return cols, nil
}
