// Package metrics holds step observers that accumulate scalar summaries of a
// trajectory while it is sampled, and after-the-fact summaries of a finished
// one.
package metrics

import "github.com/san-kum/rdsim/internal/rds"

// Metric is an rds.Observer reducing the states it sees to one value.
type Metric interface {
	rds.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns the metrics attached to every experiment run.
func Defaults() []Metric {
	return []Metric{
		NewRunningMean(),
		NewSynchrony(0.05),
		NewDisplacement(),
	}
}

// Collect reads the current value of every metric, keyed by name.
func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
