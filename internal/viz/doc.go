// Package viz renders trajectories and the per-step distribution of a
// coordinate population.
//
//   - [Renderer]: line plots of a trajectory and per-step histograms, as
//     terminal text ([ASCII]) or an HTML page ([HTML])
//   - [Tracker]: Bubble Tea model replaying histograms of a finished run
//   - [Live]: Bubble Tea model stepping a model indefinitely
//   - [Canvas]: Braille pixel canvas, used for return maps
//
// Histograms are always binned over the phase space [0,1], so frames of a
// run are comparable.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	[ ]   - Step backward/forward while paused (tracker)
//	R     - Reset to the first frame or the initial state
//	T     - Cycle color themes
//	Q     - Quit
package viz
