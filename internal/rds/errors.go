package rds

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Domain errors for sampling and derived statistics.
var (
	// ErrInvalidIterationCount indicates a trajectory length that is not a positive integer.
	ErrInvalidIterationCount = errors.New("rds: iteration count must be positive")

	// ErrPhaseSpaceDomain indicates an initial coordinate outside the phase space.
	ErrPhaseSpaceDomain = errors.New("rds: initial state outside phase space")

	// ErrShapeMismatch indicates inputs whose lengths do not line up.
	ErrShapeMismatch = errors.New("rds: shape mismatch")

	// ErrNonFinite indicates the update map produced NaN or Inf.
	ErrNonFinite = errors.New("rds: update map produced a non-finite value")

	// ErrInvalidModel indicates a model that cannot be sampled.
	ErrInvalidModel = errors.New("rds: invalid model")
)

type IterationCountError struct {
	N int
}

func (e *IterationCountError) Error() string {
	return fmt.Sprintf("%v, got %d", ErrInvalidIterationCount, e.N)
}

func (e *IterationCountError) Unwrap() error { return ErrInvalidIterationCount }

// DomainError reports the initial state and the first coordinate outside Space.
type DomainError struct {
	State State
	Index int
	Value float64
	Space Interval
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: x0=%v has x0[%d]=%v not in %v", ErrPhaseSpaceDomain, e.State, e.Index, e.Value, e.Space)
}

func (e *DomainError) Unwrap() error { return ErrPhaseSpaceDomain }

type ShapeError struct {
	What string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s: want %d, got %d", ErrShapeMismatch, e.What, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return ErrShapeMismatch }

// StepError wraps a failure with the step and coordinate it happened at.
type StepError struct {
	Step       int
	Coordinate int
	Value      float64
	Wrapped    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d, coordinate %d (value %v): %v", e.Step, e.Coordinate, e.Value, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }

type ModelError struct {
	Field  string
	Reason string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrInvalidModel, e.Field, e.Reason)
}

func (e *ModelError) Unwrap() error { return ErrInvalidModel }
