package rds

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestIntervalContains(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{1, true},
		{0.5, true},
		{-1e-12, false},
		{1 + 1e-12, false},
		{math.NaN(), false},
		{math.Inf(1), false},
	}

	for _, tt := range tests {
		if got := UnitInterval.Contains(tt.x); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestNewInterval(t *testing.T) {
	if _, err := NewInterval(0.2, 0.2); err != nil {
		t.Errorf("degenerate interval should be valid: %v", err)
	}
	if _, err := NewInterval(1, 0); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
}

func TestNewDomain(t *testing.T) {
	d, err := NewDomain(3, []bool{true, false, true})
	if err != nil {
		t.Fatalf("domain: %v", err)
	}
	if !d.Wraps(0) || d.Wraps(1) || !d.Wraps(2) || d.Wraps(3) {
		t.Errorf("unexpected modulo flags %v", d.Modulo)
	}

	if _, err := NewDomain(2, []bool{true}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("expected ErrShapeMismatch, got %v", err)
	}
	if _, err := NewDomain(0, nil); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
}

func TestNewModel(t *testing.T) {
	law := &seqLaw{values: []float64{0.5}}

	tests := []struct {
		name      string
		space     Interval
		sampleDim int
		law       Law
		fn        UpdateFunc
		wantErr   bool
	}{
		{"valid", UnitInterval, 1, law, identity, false},
		{"zero sample dim", UnitInterval, 0, law, identity, true},
		{"missing law", UnitInterval, 1, nil, identity, true},
		{"missing map", UnitInterval, 1, law, nil, true},
		{"empty space", Interval{Lo: 1, Hi: 0}, 1, law, identity, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModel(tt.space, tt.sampleDim, tt.law, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewModel error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidModel) {
				t.Errorf("expected ErrInvalidModel, got %v", err)
			}
		})
	}
}

func TestTrajectoryClone(t *testing.T) {
	traj := Trajectory{{0.1, 0.2}, {0.3, 0.4}}
	c := traj.Clone()
	c[1][0] = 0.9

	if traj[1][0] != 0.3 {
		t.Error("Clone shares state memory")
	}
	if c.Dim() != 2 || (Trajectory{}).Dim() != 0 {
		t.Error("unexpected Dim")
	}
}

func TestErrorMessages(t *testing.T) {
	err := &IterationCountError{N: -3}
	if err.Error() != "rds: iteration count must be positive, got -3" {
		t.Errorf("unexpected message %q", err.Error())
	}

	de := &DomainError{State: State{0.5, 2}, Index: 1, Value: 2, Space: UnitInterval}
	want := "rds: initial state outside phase space: x0=[0.5 2] has x0[1]=2 not in [0, 1]"
	if de.Error() != want {
		t.Errorf("DomainError = %q, want %q", de.Error(), want)
	}
}
