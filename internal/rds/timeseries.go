package rds

import "fmt"

// TimeSeries applies phi to every coordinate of every state after the first.
// The initial state is copied through unchanged.
func TimeSeries(traj Trajectory, phi Observable) Trajectory {
	out := make(Trajectory, len(traj))
	for i, x := range traj {
		if i == 0 {
			out[0] = x.Clone()
			continue
		}
		y := make(State, len(x))
		for j, v := range x {
			y[j] = phi(v)
		}
		out[i] = y
	}
	return out
}

// TimeSeriesOmega is TimeSeries for observables that depend on the ω which
// produced each state: state i is mapped with omegas[i-1].
func TimeSeriesOmega(traj Trajectory, omegas []Omega, phi OmegaObservable) (Trajectory, error) {
	if len(traj) == 0 {
		return nil, &ShapeError{What: "trajectory length", Want: 1, Got: 0}
	}
	if len(omegas) != len(traj)-1 {
		return nil, &ShapeError{What: "omegas per step", Want: len(traj) - 1, Got: len(omegas)}
	}

	out := make(Trajectory, len(traj))
	out[0] = traj[0].Clone()
	for i := 1; i < len(traj); i++ {
		w := omegas[i-1]
		y := make(State, len(traj[i]))
		for j, v := range traj[i] {
			y[j] = phi(w, v)
		}
		out[i] = y
	}
	return out, nil
}

// TimeSeriesEnvironment is the annealed counterpart of TimeSeriesOmega:
// coordinate j of state i is mapped with env[i-1][j].
func TimeSeriesEnvironment(traj Trajectory, env [][]Omega, phi OmegaObservable) (Trajectory, error) {
	if len(traj) == 0 {
		return nil, &ShapeError{What: "trajectory length", Want: 1, Got: 0}
	}
	if len(env) != len(traj)-1 {
		return nil, &ShapeError{What: "environment steps", Want: len(traj) - 1, Got: len(env)}
	}

	out := make(Trajectory, len(traj))
	out[0] = traj[0].Clone()
	for i := 1; i < len(traj); i++ {
		if len(env[i-1]) != len(traj[i]) {
			return nil, &ShapeError{What: fmt.Sprintf("environment width at step %d", i), Want: len(traj[i]), Got: len(env[i-1])}
		}
		y := make(State, len(traj[i]))
		for j, v := range traj[i] {
			y[j] = phi(env[i-1][j], v)
		}
		out[i] = y
	}
	return out, nil
}
