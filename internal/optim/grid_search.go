package optim

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/experiment"
)

// GridSearch evaluates every combination of the listed parameter values and
// keeps the one with the lowest metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	// Maximize flips the comparison.
	Maximize bool
}

func NewGridSearch(params []string, ranges [][]float64) (*GridSearch, error) {
	if len(params) == 0 || len(params) != len(ranges) {
		return nil, errors.Newf("grid search: %d names for %d ranges", len(params), len(ranges))
	}
	for i, r := range ranges {
		if len(r) == 0 {
			return nil, errors.Newf("grid search: no values for %s", params[i])
		}
	}
	return &GridSearch{paramNames: params, ranges: ranges}, nil
}

// Result is the best point found and the number of runs evaluated.
type Result struct {
	Params    map[string]float64
	Value     float64
	Evaluated int
}

func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) (*Result, error) {
	res := &Result{Value: math.Inf(1)}
	if g.Maximize {
		res.Value = math.Inf(-1)
	}

	if err := g.searchRecursive(ctx, 0, make(map[string]float64), buildExperiment, metricName, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (g *GridSearch) better(val, best float64) bool {
	if g.Maximize {
		return val > best
	}
	return val < best
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildExperiment func(map[string]float64) (*experiment.Experiment, error),
	metricName string,
	res *Result,
) error {
	if depth == len(g.paramNames) {
		exp, err := buildExperiment(current)
		if err != nil {
			return errors.Wrapf(err, "build %v", current)
		}

		run, err := exp.Run(ctx)
		if err != nil {
			return errors.Wrapf(err, "run %v", current)
		}
		res.Evaluated++

		val, ok := run.Metrics[metricName]
		if !ok {
			return errors.Newf("grid search: unknown metric %s", metricName)
		}
		if res.Params == nil || g.better(val, res.Value) {
			res.Value = val
			res.Params = make(map[string]float64, len(current))
			for k, v := range current {
				res.Params[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, buildExperiment, metricName, res); err != nil {
			return err
		}
	}
	return nil
}
