package metrics

import (
	"math"

	"github.com/san-kum/rdsim/internal/rds"
)

// Displacement is the mean circular distance a coordinate moves per step.
type Displacement struct {
	name    string
	prev    rds.State
	sum     float64
	samples int
}

func NewDisplacement() *Displacement {
	return &Displacement{
		name: "displacement",
	}
}

func (d *Displacement) Name() string {
	return d.name
}

func (d *Displacement) OnStep(step int, x rds.State) {
	if d.prev != nil && len(d.prev) == len(x) {
		for i, v := range x {
			d.sum += CircleDistance(d.prev[i], v)
			d.samples++
		}
	}
	d.prev = x.Clone()
}

func (d *Displacement) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.sum / float64(d.samples)
}

func (d *Displacement) Reset() {
	d.prev = nil
	d.sum = 0
	d.samples = 0
}

// CircleDistance is the distance between a and b on the unit circle.
func CircleDistance(a, b float64) float64 {
	diff := math.Abs(rds.Wrap(a) - rds.Wrap(b))
	return math.Min(diff, 1-diff)
}
