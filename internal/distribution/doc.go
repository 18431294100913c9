// Package distribution provides the laws random parameters are drawn from.
//
// Every law satisfies [Provider]: it draws i.i.d. values, exposes its
// quantile function for inverse-CDF sampling and reports the [Precision]
// it was configured with. Parametric laws are backed by gonum's distuv
// package, seeded from golang.org/x/exp/rand sources so runs are
// reproducible from a single seed. [Empirical] builds a law from observed
// data through a compressed piecewise linear ECDF.
package distribution
