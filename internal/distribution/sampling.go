package distribution

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// SampleNormalized draws n values from p and min-max normalizes them into
// [0,1]. Laws configured with high precision are normalized in math/big
// arithmetic at that precision. Values falling outside [0,1] after rounding
// are dropped, so the result may be shorter than n.
func SampleNormalized(p Provider, n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.Newf("sample count must be positive, got %d", n)
	}
	raw := p.Draw(n)
	if len(raw) == 0 {
		return []float64{}, nil
	}

	lo, hi := raw[0], raw[0]
	for _, v := range raw {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var norm []float64
	if prec := p.Precision(); prec.High() {
		norm = normalizeBig(raw, lo, hi, prec.Bits)
	} else {
		norm = normalize(raw, lo, hi)
	}

	out := norm[:0]
	for _, v := range norm {
		if v >= 0 && v <= 1 {
			out = append(out, v)
		}
	}
	return out, nil
}

func normalize(raw []float64, lo, hi float64) []float64 {
	out := make([]float64, len(raw))
	width := hi - lo
	if width == 0 {
		return out
	}
	for i, v := range raw {
		out[i] = (v - lo) / width
	}
	return out
}

func normalizeBig(raw []float64, lo, hi float64, bits uint) []float64 {
	out := make([]float64, len(raw))
	if hi == lo {
		return out
	}
	bLo := new(big.Float).SetPrec(bits).SetFloat64(lo)
	width := new(big.Float).SetPrec(bits).SetFloat64(hi)
	width.Sub(width, bLo)

	x := new(big.Float).SetPrec(bits)
	for i, v := range raw {
		x.SetFloat64(v)
		x.Sub(x, bLo)
		x.Quo(x, width)
		out[i], _ = x.Float64()
	}
	return out
}
