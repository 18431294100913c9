package analysis

import (
	"github.com/cockroachdb/errors"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/rdsim/internal/rds"
)

// PowerSpectrum returns the periodogram |X_k|²/n of the mean-removed series
// for k = 0..n/2. Bin k has normalized frequency k/n cycles per step.
func PowerSpectrum(series []float64) []float64 {
	n := len(series)
	if n == 0 {
		return nil
	}
	mean := stat.Mean(series, nil)
	centered := make([]float64, n)
	for i, v := range series {
		centered[i] = v - mean
	}

	coeff := fft.FFTReal(centered)
	ps := make([]float64, n/2+1)
	for i := range ps {
		c := coeff[i]
		ps[i] = (real(c)*real(c) + imag(c)*imag(c)) / float64(n)
	}
	return ps
}

// DominantFrequency returns the normalized frequency of the strongest
// non-constant bin of the spectrum of series.
func DominantFrequency(series []float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	return float64(best) / float64(len(series))
}

// CoordinateSeries extracts coordinate coord of every state.
func CoordinateSeries(traj rds.Trajectory, coord int) ([]float64, error) {
	out := make([]float64, len(traj))
	for k, x := range traj {
		if coord < 0 || coord >= len(x) {
			return nil, errors.Newf("state %d has no coordinate %d", k, coord)
		}
		out[k] = x[coord]
	}
	return out, nil
}
