package metrics

import "github.com/san-kum/rdsim/internal/rds"

// RunningMean tracks the per-coordinate time average of the states observed
// so far. Its Value is the average over coordinates.
type RunningMean struct {
	name    string
	sums    []float64
	samples int
}

func NewRunningMean() *RunningMean {
	return &RunningMean{name: "running_mean"}
}

func (r *RunningMean) Name() string {
	return r.name
}

func (r *RunningMean) OnStep(step int, x rds.State) {
	if r.sums == nil {
		r.sums = make([]float64, len(x))
	}
	for i, v := range x {
		if i < len(r.sums) {
			r.sums[i] += v
		}
	}
	r.samples++
}

// Means returns the per-coordinate averages, nil before the first step.
func (r *RunningMean) Means() []float64 {
	if r.samples == 0 {
		return nil
	}
	out := make([]float64, len(r.sums))
	for i, s := range r.sums {
		out[i] = s / float64(r.samples)
	}
	return out
}

func (r *RunningMean) Value() float64 {
	means := r.Means()
	if len(means) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range means {
		total += m
	}
	return total / float64(len(means))
}

func (r *RunningMean) Reset() {
	r.sums = nil
	r.samples = 0
}
