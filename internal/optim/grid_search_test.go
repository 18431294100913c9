package optim

import (
	"context"
	"io"
	"testing"

	"github.com/san-kum/rdsim/internal/config"
	"github.com/san-kum/rdsim/internal/experiment"
	"github.com/san-kum/rdsim/internal/logger"
)

// rotationExperiment moves x from 0 by one uniform draw on [0, max], so the
// running mean grows with max under a fixed seed.
func rotationExperiment(params map[string]float64) (*experiment.Experiment, error) {
	cfg := config.DefaultConfig()
	cfg.Seed = 21
	cfg.Steps = 1
	cfg.InitState = []float64{0}
	cfg.Distribution.Params = params
	return experiment.New(cfg, logger.NewLoggerTo(io.Discard, "ERROR", "optim-test")), nil
}

func TestGridSearch(t *testing.T) {
	g, err := NewGridSearch([]string{"max"}, [][]float64{{0.5, 0.1, 0.9}})
	if err != nil {
		t.Fatal(err)
	}

	res, err := g.Search(context.Background(), rotationExperiment, "running_mean")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Params["max"] != 0.1 || res.Evaluated != 3 {
		t.Errorf("minimize: got %+v", res)
	}

	g.Maximize = true
	res, err = g.Search(context.Background(), rotationExperiment, "running_mean")
	if err != nil {
		t.Fatal(err)
	}
	if res.Params["max"] != 0.9 {
		t.Errorf("maximize: got %+v", res)
	}
}

func TestGridSearch_Combinations(t *testing.T) {
	g, err := NewGridSearch([]string{"min", "max"}, [][]float64{{0, 0.1}, {0.5, 0.6, 0.7}})
	if err != nil {
		t.Fatal(err)
	}
	res, err := g.Search(context.Background(), rotationExperiment, "displacement")
	if err != nil {
		t.Fatal(err)
	}
	if res.Evaluated != 6 || len(res.Params) != 2 {
		t.Errorf("got %+v", res)
	}
}

func TestGridSearch_Errors(t *testing.T) {
	if _, err := NewGridSearch(nil, nil); err == nil {
		t.Error("expected error for empty grid")
	}
	if _, err := NewGridSearch([]string{"a"}, [][]float64{{1}, {2}}); err == nil {
		t.Error("expected error for mismatched grid")
	}
	if _, err := NewGridSearch([]string{"a"}, [][]float64{{}}); err == nil {
		t.Error("expected error for empty range")
	}

	g, _ := NewGridSearch([]string{"max"}, [][]float64{{0.5}})
	if _, err := g.Search(context.Background(), rotationExperiment, "nope"); err == nil {
		t.Error("expected error for unknown metric")
	}

	g, _ = NewGridSearch([]string{"max"}, [][]float64{{-1}})
	if _, err := g.Search(context.Background(), rotationExperiment, "running_mean"); err == nil {
		t.Error("expected error for invalid law parameters")
	}
}
