package distribution

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"golang.org/x/exp/rand"
)

// DefaultECDFPoints bounds the size of a compressed empirical CDF.
const DefaultECDFPoints = 300

// Empirical is a law built from observed values. Its CDF is the empirical
// one, rescaled to [0,1], compressed with the Visvalingam-Whyatt algorithm
// and sampled by inverse transform.
type Empirical struct {
	ecdf   [][2]float64
	lo, hi float64
	rng    *rand.Rand
}

func NewEmpirical(data []float64, points int, seed uint64) (*Empirical, error) {
	if len(data) == 0 {
		return nil, errors.New("empirical: no data")
	}
	if points < 2 {
		points = DefaultECDFPoints
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	width := hi - lo
	if width == 0 {
		width = 1
	}

	n := float64(len(sorted))
	ls := orb.LineString{{0, 0}}
	for i, v := range sorted {
		ls = append(ls, orb.Point{(v - lo) / width, float64(i+1) / n})
	}
	if last := ls[len(ls)-1]; last != (orb.Point{1, 1}) {
		ls = append(ls, orb.Point{1, 1})
	}

	compressed := simplify.VisvalingamKeep(points).Simplify(ls).(orb.LineString)
	ecdf := make([][2]float64, len(compressed))
	for i := range compressed {
		ecdf[i] = [2]float64(compressed[i])
	}
	if err := CheckECDF(ecdf); err != nil {
		return nil, err
	}

	return &Empirical{
		ecdf: ecdf,
		lo:   lo,
		hi:   hi,
		rng:  rand.New(rand.NewSource(seed)),
	}, nil
}

func (e *Empirical) Name() string         { return "empirical" }
func (e *Empirical) Precision() Precision { return Precision{} }

// ECDF returns the compressed CDF points on the rescaled [0,1] axis.
func (e *Empirical) ECDF() [][2]float64 { return e.ecdf }

func (e *Empirical) Quantile(p float64) float64 {
	return e.lo + (e.hi-e.lo)*Quantile(e.ecdf, p)
}

func (e *Empirical) Draw(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = e.Quantile(e.rng.Float64())
	}
	return out
}

// Quantile inverts a piecewise linear CDF given as points from (0,0) to (1,1).
func Quantile(f [][2]float64, y float64) float64 {
	if y <= 0 {
		return 0.0
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i+1][1] >= y {
			dy := f[i+1][1] - f[i][1]
			if dy == 0 {
				return f[i+1][0]
			}
			scale := (y - f[i][1]) / dy
			return f[i][0] + scale*(f[i+1][0]-f[i][0])
		}
	}
	return 1.0
}

// CheckECDF verifies a piecewise linear CDF starts at (0,0), ends at (1,1)
// and never decreases.
func CheckECDF(f [][2]float64) error {
	if len(f) < 2 {
		return errors.New("ECDF must have at least start and end point")
	}
	if f[0] != [2]float64{0.0, 0.0} {
		return errors.Newf("ECDF must start at (0,0), but starts at (%v,%v)", f[0][0], f[0][1])
	}
	last := len(f) - 1
	if f[last] != [2]float64{1.0, 1.0} {
		return errors.Newf("ECDF must end at (1,1), but ends at (%v,%v)", f[last][0], f[last][1])
	}
	for i := 0; i < len(f)-1; i++ {
		if f[i][0] > f[i+1][0] || f[i][1] > f[i+1][1] {
			return errors.Newf("ECDF point %v (%v,%v) exceeds point %v (%v,%v)", i, f[i][0], f[i][1], i+1, f[i+1][0], f[i+1][1])
		}
	}
	return nil
}
