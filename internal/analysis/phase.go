package analysis

import (
	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

type Point struct {
	X, Y float64
}

// ReturnMap pairs each value of coordinate coord with the value lag steps
// later.
func ReturnMap(traj rds.Trajectory, coord, lag int) ([]Point, error) {
	if lag <= 0 {
		return nil, errors.Newf("return map: lag must be positive, got %d", lag)
	}
	series, err := CoordinateSeries(traj, coord)
	if err != nil {
		return nil, err
	}
	if len(series) <= lag {
		return []Point{}, nil
	}
	points := make([]Point, 0, len(series)-lag)
	for k := 0; k+lag < len(series); k++ {
		points = append(points, Point{X: series[k], Y: series[k+lag]})
	}
	return points, nil
}
