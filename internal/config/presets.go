package config

import "sort"

type preset struct {
	mode   string
	steps  int
	x0     []float64
	dist   string
	params map[string]float64
}

var presets = map[string]map[string]preset{
	"identity": {
		"fixed": {steps: 3, x0: []float64{0.2, 0.8}},
	},
	"rotation": {
		"small_shift": {steps: 200, x0: []float64{0.1}, dist: "uniform", params: map[string]float64{"min": 0, "max": 0.1}},
		"population": {mode: "annealed", steps: 100, x0: []float64{0.1, 0.3, 0.5, 0.7, 0.9}, dist: "uniform"},
	},
	"doubling": {
		"noisy": {steps: 200, x0: []float64{0.3}, dist: "normal", params: map[string]float64{"mu": 0, "sigma": 0.01}},
	},
	"logistic": {
		"chaotic": {steps: 500, x0: []float64{0.2}, dist: "uniform", params: map[string]float64{"min": 3.7, "max": 4}},
		"stable":  {steps: 200, x0: []float64{0.2}, dist: "uniform", params: map[string]float64{"min": 2.5, "max": 2.9}},
		"cloud":   {mode: "annealed", steps: 100, x0: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}, dist: "uniform", params: map[string]float64{"min": 3.5, "max": 4}},
	},
	"tent": {
		"full": {steps: 300, x0: []float64{0.37}, dist: "uniform", params: map[string]float64{"min": 1.5, "max": 2}},
	},
	"multiplicative": {
		"contracting": {steps: 100, x0: []float64{0.9}, dist: "uniform", params: map[string]float64{"min": 0.5, "max": 1}},
	},
	"circle": {
		"arnold": {steps: 300, x0: []float64{0.25}, dist: "beta", params: map[string]float64{"alpha": 2, "beta": 2}},
	},
}

// GetPreset returns a fresh configuration for the named preset of model, or
// nil when either is unknown.
func GetPreset(model, name string) *Config {
	modelPresets, ok := presets[model]
	if !ok {
		return nil
	}
	p, ok := modelPresets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Model = model
	if p.mode != "" {
		cfg.Mode = p.mode
	}
	cfg.Steps = p.steps
	cfg.InitState = append([]float64(nil), p.x0...)
	if p.dist != "" {
		cfg.Distribution.Name = p.dist
	}
	if p.params != nil {
		cfg.Distribution.Params = make(map[string]float64, len(p.params))
		for k, v := range p.params {
			cfg.Distribution.Params[k] = v
		}
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetModels lists the models that have presets.
func PresetModels() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
