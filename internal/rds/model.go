package rds

import "fmt"

// Model bundles everything needed to evolve a state: the phase space, the
// dimension of ω, the law ω is drawn from and the update map.
type Model struct {
	Space     Interval
	SampleDim int
	Law       Law
	Map       UpdateFunc
}

// NewModel checks the parts of a model the type system cannot. The update
// map itself is not evaluated.
func NewModel(space Interval, sampleDim int, law Law, fn UpdateFunc) (*Model, error) {
	if space.Lo > space.Hi {
		return nil, &ModelError{Field: "space", Reason: fmt.Sprintf("empty interval %v", space)}
	}
	if sampleDim <= 0 {
		return nil, &ModelError{Field: "sample dimension", Reason: fmt.Sprintf("must be positive, got %d", sampleDim)}
	}
	if law == nil {
		return nil, &ModelError{Field: "law", Reason: "missing"}
	}
	if fn == nil {
		return nil, &ModelError{Field: "map", Reason: "missing"}
	}
	return &Model{Space: space, SampleDim: sampleDim, Law: law, Map: fn}, nil
}

// drawOmegas takes count omegas from the law, SampleDim scalars each.
func (m *Model) drawOmegas(count int) ([]Omega, error) {
	raw := m.Law.Draw(count * m.SampleDim)
	if len(raw) != count*m.SampleDim {
		return nil, &ShapeError{What: "law draws", Want: count * m.SampleDim, Got: len(raw)}
	}
	omegas := make([]Omega, count)
	for i := range omegas {
		w := make(Omega, m.SampleDim)
		copy(w, raw[i*m.SampleDim:(i+1)*m.SampleDim])
		omegas[i] = w
	}
	return omegas, nil
}

// validateInit checks x0 against the phase space.
func (m *Model) validateInit(x0 State) error {
	for i, v := range x0 {
		if !m.Space.Contains(v) {
			return &DomainError{State: x0.Clone(), Index: i, Value: v, Space: m.Space}
		}
	}
	return nil
}
