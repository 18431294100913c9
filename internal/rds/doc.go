// Package rds provides the core of the random dynamical system simulator.
//
// A random dynamical system evolves a state under a deterministic map that
// takes a freshly drawn random parameter ω at every step:
//
//   - [Interval]: the phase space, with membership testing
//   - [Model]: phase space, sample-space dimension, law of ω and update map
//   - [Sampler]: produces trajectories in quenched or annealed mode
//   - [TimeSeries], [TimeSeriesOmega]: observables applied along a trajectory
//   - [EmpiricalAverage]: per-coordinate mean of a trajectory
//
// # Example
//
//	law := distribution.NewUniform(0, 1, seed)
//	model, _ := rds.NewModel(rds.UnitInterval, 1, law, func(w rds.Omega, x float64) float64 {
//	    return x + w[0]
//	})
//	res, _ := rds.Sample(model, 100, rds.State{0.1, 0.7}, rds.Options{CaptureOmegas: true})
//	avg, _ := rds.EmpiricalAverage(res.Trajectory)
//
// # Modes
//
// In [Quenched] mode all coordinates share the ω drawn for a step. In
// [Annealed] mode each coordinate receives its own ω every step.
//
// # Thread Safety
//
// A Sampler draws from its model's [Law], which usually owns a PRNG source.
// Neither is safe for concurrent use.
package rds
