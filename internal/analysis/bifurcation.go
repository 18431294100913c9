package analysis

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

// BifurcationPoint holds the distinct states visited for one frozen ω.
type BifurcationPoint struct {
	Param  float64
	Values []float64
}

type BifurcationConfig struct {
	Lo, Hi    float64
	Steps     int
	X0        float64
	Transient int
	Record    int
	// Base supplies the remaining ω components for maps with SampleDim > 1;
	// component 0 is swept.
	Base rds.Omega
}

// BifurcationDiagram freezes ω[0] at each of Steps values in [Lo, Hi] and
// records the distinct states the deterministic map visits after Transient
// iterations. Values are deduplicated at a resolution of 1e-3.
func BifurcationDiagram(fn rds.UpdateFunc, sampleDim int, cfg BifurcationConfig) ([]BifurcationPoint, error) {
	if sampleDim <= 0 {
		return nil, errors.Newf("bifurcation: sample dimension must be positive, got %d", sampleDim)
	}
	if cfg.Steps <= 0 || cfg.Record <= 0 {
		return nil, errors.New("bifurcation: steps and record must be positive")
	}
	if !rds.UnitInterval.Contains(cfg.X0) {
		return nil, errors.Wrapf(rds.ErrPhaseSpaceDomain, "bifurcation: x0=%v", cfg.X0)
	}

	w := make(rds.Omega, sampleDim)
	copy(w, cfg.Base)

	paramStep := 0.0
	if cfg.Steps > 1 {
		paramStep = (cfg.Hi - cfg.Lo) / float64(cfg.Steps-1)
	}

	results := make([]BifurcationPoint, 0, cfg.Steps)
	for i := 0; i < cfg.Steps; i++ {
		param := cfg.Lo + float64(i)*paramStep
		w[0] = param

		x := cfg.X0
		for k := 0; k < cfg.Transient; k++ {
			x = rds.Wrap(fn(w, x))
		}

		values := make([]float64, 0, 16)
		seen := make(map[int]bool)
		for k := 0; k < cfg.Record; k++ {
			x = rds.Wrap(fn(w, x))
			key := int(x * 1000)
			if !seen[key] {
				seen[key] = true
				values = append(values, x)
			}
		}

		results = append(results, BifurcationPoint{Param: param, Values: values})
	}
	return results, nil
}

// BifurcationToASCII plots the diagram with ω on the horizontal axis and the
// unit interval on the vertical one.
func BifurcationToASCII(data []BifurcationPoint, width, height int) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for i, p := range data {
		col := i * width / len(data)
		if col >= width {
			col = width - 1
		}
		for _, v := range p.Values {
			row := height - 1 - int(v*float64(height-1))
			if row >= 0 && row < height {
				canvas[row][col] = '•'
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
