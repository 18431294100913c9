package rds

import "math/rand"

// seqLaw replays a fixed sequence of draws, cycling when exhausted.
type seqLaw struct {
	values []float64
	next   int
	calls  []int
}

func (l *seqLaw) Draw(n int) []float64 {
	l.calls = append(l.calls, n)
	out := make([]float64, n)
	for i := range out {
		out[i] = l.values[l.next%len(l.values)]
		l.next++
	}
	return out
}

// randLaw draws uniform values from a seeded source.
type randLaw struct {
	rng *rand.Rand
}

func newRandLaw(seed int64) *randLaw {
	return &randLaw{rng: rand.New(rand.NewSource(seed))}
}

func (l *randLaw) Draw(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = l.rng.Float64()
	}
	return out
}

func identity(_ Omega, x float64) float64 { return x }

func rotation(w Omega, x float64) float64 { return x + w[0] }

func mustModel(law Law, fn UpdateFunc) *Model {
	m, err := NewModel(UnitInterval, 1, law, fn)
	if err != nil {
		panic(err)
	}
	return m
}
