package metrics

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

func TestRunningMean(t *testing.T) {
	m := NewRunningMean()
	if m.Means() != nil {
		t.Error("expected nil means before first step")
	}

	m.OnStep(0, rds.State{0.2, 0.4})
	m.OnStep(1, rds.State{0.4, 0.8})

	means := m.Means()
	if math.Abs(means[0]-0.3) > 1e-12 || math.Abs(means[1]-0.6) > 1e-12 {
		t.Errorf("expected [0.3 0.6], got %v", means)
	}
	if math.Abs(m.Value()-0.45) > 1e-12 {
		t.Errorf("expected value 0.45, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestSynchrony(t *testing.T) {
	s := NewSynchrony(0.1)
	if s.Value() != 1.0 {
		t.Error("expected full synchrony with no samples")
	}

	s.OnStep(0, rds.State{0.98, 0.02})
	s.OnStep(1, rds.State{0.1, 0.6})

	if math.Abs(s.Value()-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", s.Value())
	}

	s.Reset()
	if s.Value() != 1.0 {
		t.Error("expected reset to clear samples")
	}
}

func TestCircularSpread(t *testing.T) {
	tests := []struct {
		x    rds.State
		want float64
	}{
		{rds.State{0.3}, 0},
		{rds.State{0.2, 0.5}, 0.3},
		{rds.State{0.95, 0.05}, 0.1},
		{rds.State{0, 0.25, 0.5, 0.75}, 0.75},
	}

	for _, tt := range tests {
		got := CircularSpread(tt.x)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("CircularSpread(%v): expected %f, got %f", tt.x, tt.want, got)
		}
	}
}

func TestDisplacement(t *testing.T) {
	d := NewDisplacement()
	d.OnStep(0, rds.State{0.1})
	if d.Value() != 0 {
		t.Error("expected zero displacement after a single state")
	}

	d.OnStep(1, rds.State{0.9})
	d.OnStep(2, rds.State{0.6})

	if math.Abs(d.Value()-0.25) > 1e-12 {
		t.Errorf("expected mean displacement 0.25, got %f", d.Value())
	}
}

func TestCollectDefaults(t *testing.T) {
	ms := Defaults()
	for _, m := range ms {
		m.OnStep(0, rds.State{0.5})
	}
	values := Collect(ms)
	for _, name := range []string{"running_mean", "synchrony", "displacement"} {
		if _, ok := values[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
}

func TestSummarize(t *testing.T) {
	traj := rds.Trajectory{{0.1, 0.5}, {0.3, 0.5}, {0.5, 0.5}}
	stats, err := Summarize(traj)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 coordinates, got %d", len(stats))
	}
	if math.Abs(stats[0].Mean-0.3) > 1e-12 || math.Abs(stats[0].Variance-0.04) > 1e-12 {
		t.Errorf("unexpected stats %+v", stats[0])
	}
	if stats[0].Min != 0.1 || stats[0].Max != 0.5 {
		t.Errorf("unexpected range %+v", stats[0])
	}
	if stats[1].Variance != 0 {
		t.Errorf("constant coordinate should have zero variance, got %f", stats[1].Variance)
	}
}

func TestSummarize_Errors(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, rds.ErrShapeMismatch) {
		t.Errorf("expected shape mismatch, got %v", err)
	}
	if _, err := Summarize(rds.Trajectory{{0.1}, {0.1, 0.2}}); !errors.Is(err, rds.ErrShapeMismatch) {
		t.Errorf("expected shape mismatch, got %v", err)
	}
}
