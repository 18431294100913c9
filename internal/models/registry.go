package models

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

type Registry struct {
	maps map[string]func() Map
}

func NewRegistry() *Registry {
	r := &Registry{maps: make(map[string]func() Map)}

	r.Register("identity", func() Map { return NewIdentity() })
	r.Register("rotation", func() Map { return NewRotation() })
	r.Register("doubling", func() Map { return NewDoubling() })
	r.Register("logistic", func() Map { return NewLogistic() })
	r.Register("tent", func() Map { return NewTent() })
	r.Register("multiplicative", func() Map { return NewMultiplicative() })
	r.Register("circle", func() Map { return NewCircle() })

	return r
}

func (r *Registry) Register(name string, fn func() Map) {
	r.maps[name] = fn
}

func (r *Registry) Get(name string) (Map, error) {
	fn, ok := r.maps[name]
	if !ok {
		return nil, errors.Newf("unknown model: %s", name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build looks up name and binds it to law on the unit interval.
func (r *Registry) Build(name string, law rds.Law) (*rds.Model, error) {
	m, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return NewModel(m, law)
}

func NewModel(m Map, law rds.Law) (*rds.Model, error) {
	model, err := rds.NewModel(rds.UnitInterval, m.SampleDim(), law, m.Update)
	if err != nil {
		return nil, errors.Wrapf(err, "model %s", m.Name())
	}
	return model, nil
}
