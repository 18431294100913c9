package metrics

import (
	"math"
	"sort"

	"github.com/san-kum/rdsim/internal/rds"
)

// Synchrony is the fraction of observed steps in which every coordinate lies
// within threshold of every other, measured on the circle.
type Synchrony struct {
	name      string
	threshold float64
	synced    int
	samples   int
}

func NewSynchrony(threshold float64) *Synchrony {
	return &Synchrony{
		name:      "synchrony",
		threshold: threshold,
	}
}

func (s *Synchrony) Name() string {
	return s.name
}

func (s *Synchrony) OnStep(step int, x rds.State) {
	s.samples++
	if CircularSpread(x) <= s.threshold {
		s.synced++
	}
}

func (s *Synchrony) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.synced) / float64(s.samples)
}

func (s *Synchrony) Reset() {
	s.synced = 0
	s.samples = 0
}

// CircularSpread is the length of the shortest arc of the unit circle
// containing every coordinate of x.
func CircularSpread(x rds.State) float64 {
	if len(x) < 2 {
		return 0
	}
	pts := make([]float64, len(x))
	for i, v := range x {
		pts[i] = rds.Wrap(v)
	}
	sort.Float64s(pts)

	// The covering arc is the circle minus its largest gap.
	gap := pts[0] + 1 - pts[len(pts)-1]
	for i := 1; i < len(pts); i++ {
		gap = math.Max(gap, pts[i]-pts[i-1])
	}
	return 1 - gap
}
