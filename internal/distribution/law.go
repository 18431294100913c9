package distribution

import (
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Float64Bits is the mantissa width of a float64.
const Float64Bits = 53

// Precision configures how uniform variates are generated. With Bits above
// Float64Bits, draws go through the quantile function of the law using a
// uniform variate assembled from Bits random bits in math/big arithmetic.
// The variate is rounded to a float64 before the quantile is applied, so
// draws carry float64 precision whatever Bits is; only SampleNormalized keeps
// Bits of precision through its arithmetic.
type Precision struct {
	Bits uint
}

func (p Precision) High() bool { return p.Bits > Float64Bits }

type Provider interface {
	Draw(n int) []float64
	Quantile(p float64) float64
	Name() string
	Precision() Precision
}

type univariate interface {
	Rand() float64
	Quantile(p float64) float64
}

// Spec names a law and its parameters, as found in configuration files.
type Spec struct {
	Name          string             `yaml:"name"`
	Params        map[string]float64 `yaml:"params,omitempty"`
	PrecisionBits uint               `yaml:"precision_bits,omitempty"`
}

type Law struct {
	name      string
	dist      univariate
	rng       *rand.Rand
	precision Precision
}

type factory func(p map[string]float64, src rand.Source) (univariate, error)

var factories = map[string]factory{
	"uniform": func(p map[string]float64, src rand.Source) (univariate, error) {
		lo, hi := param(p, "min", 0), param(p, "max", 1)
		if !(lo < hi) {
			return nil, errors.Newf("uniform: min %v must be below max %v", lo, hi)
		}
		return distuv.Uniform{Min: lo, Max: hi, Src: src}, nil
	},
	"normal": func(p map[string]float64, src rand.Source) (univariate, error) {
		sigma := param(p, "sigma", 1)
		if sigma <= 0 {
			return nil, errors.Newf("normal: sigma must be positive, got %v", sigma)
		}
		return distuv.Normal{Mu: param(p, "mu", 0), Sigma: sigma, Src: src}, nil
	},
	"beta": func(p map[string]float64, src rand.Source) (univariate, error) {
		a, b := param(p, "alpha", 2), param(p, "beta", 2)
		if a <= 0 || b <= 0 {
			return nil, errors.Newf("beta: alpha and beta must be positive, got %v, %v", a, b)
		}
		return distuv.Beta{Alpha: a, Beta: b, Src: src}, nil
	},
	"exponential": func(p map[string]float64, src rand.Source) (univariate, error) {
		rate := param(p, "rate", 1)
		if rate <= 0 {
			return nil, errors.Newf("exponential: rate must be positive, got %v", rate)
		}
		return distuv.Exponential{Rate: rate, Src: src}, nil
	},
	"lognormal": func(p map[string]float64, src rand.Source) (univariate, error) {
		sigma := param(p, "sigma", 1)
		if sigma <= 0 {
			return nil, errors.Newf("lognormal: sigma must be positive, got %v", sigma)
		}
		return distuv.LogNormal{Mu: param(p, "mu", 0), Sigma: sigma, Src: src}, nil
	},
	"triangle": func(p map[string]float64, src rand.Source) (univariate, error) {
		a, b := param(p, "a", 0), param(p, "b", 1)
		c := param(p, "c", (a+b)/2)
		if !(a < b) || c < a || c > b {
			return nil, errors.Newf("triangle: need a < b and a <= c <= b, got %v, %v, %v", a, b, c)
		}
		return distuv.NewTriangle(a, b, c, src), nil
	},
}

// Names lists the parametric laws New understands.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the law described by spec, seeded with seed.
func New(spec Spec, seed uint64) (*Law, error) {
	name := strings.ToLower(spec.Name)
	if name == "" {
		name = "uniform"
	}
	fn, ok := factories[name]
	if !ok {
		return nil, errors.Newf("unknown distribution: %s (available: %v)", spec.Name, Names())
	}

	src := rand.NewSource(seed)
	dist, err := fn(spec.Params, src)
	if err != nil {
		return nil, err
	}
	return &Law{
		name:      name,
		dist:      dist,
		rng:       rand.New(rand.NewSource(seed ^ 0x9e3779b97f4a7c15)),
		precision: Precision{Bits: spec.PrecisionBits},
	}, nil
}

func NewUniform(lo, hi float64, seed uint64) (*Law, error) {
	return New(Spec{Name: "uniform", Params: map[string]float64{"min": lo, "max": hi}}, seed)
}

func NewNormal(mu, sigma float64, seed uint64) (*Law, error) {
	return New(Spec{Name: "normal", Params: map[string]float64{"mu": mu, "sigma": sigma}}, seed)
}

func (l *Law) Name() string               { return l.name }
func (l *Law) Precision() Precision       { return l.precision }
func (l *Law) Quantile(p float64) float64 { return l.dist.Quantile(p) }

func (l *Law) Draw(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if !l.precision.High() {
		for i := range out {
			out[i] = l.dist.Rand()
		}
		return out
	}
	for i := range out {
		out[i] = l.dist.Quantile(uniformBits(l.rng, l.precision.Bits))
	}
	return out
}

// uniformBits returns a variate in the open interval (0, 1) assembled from
// bits random bits and rounded to the nearest float64.
func uniformBits(rng *rand.Rand, bits uint) float64 {
	words := int((bits + 63) / 64)
	for {
		u := new(big.Float).SetPrec(bits)
		scale := new(big.Float).SetPrec(bits).SetFloat64(1)
		word := new(big.Float).SetPrec(bits)
		for k := 0; k < words; k++ {
			scale.SetMantExp(scale, -64)
			word.SetUint64(rng.Uint64())
			word.Mul(word, scale)
			u.Add(u, word)
		}
		f, _ := u.Float64()
		if f > 0 && f < 1 {
			return f
		}
	}
}

func param(p map[string]float64, key string, def float64) float64 {
	if v, ok := p[key]; ok && !math.IsNaN(v) {
		return v
	}
	return def
}
