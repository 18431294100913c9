// Package analysis characterizes sampled random dynamical systems.
//
//   - [LyapunovExponent]: mean log-derivative along a captured quenched path
//   - [SeparationExponent]: growth rate of two nearby states driven by the same ω
//   - [PowerSpectrum]: periodogram of one coordinate's time series
//   - [ReturnMap]: (x_k, x_{k+lag}) pairs of one coordinate
//   - [BifurcationDiagram]: attractor of the frozen map as ω sweeps a range
//
// # Chaos Detection
//
// A positive exponent indicates sensitive dependence on the initial state:
//
//	res, _ := rds.Sample(model, 1000, x0, rds.Options{CaptureOmegas: true})
//	lambda, _ := analysis.LyapunovExponent(model, res.Trajectory, res.Omegas, 0, 1e-7)
//	if lambda > 0 {
//	    // chaotic
//	}
package analysis
