// Package export writes sampled trajectories in CSV, JSON and SVG form to
// any io.Writer. It keeps no state between calls.
package export

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

// Record is everything written for one run.
type Record struct {
	ID           string             `json:"id"`
	Model        string             `json:"model"`
	Mode         string             `json:"mode"`
	Distribution string             `json:"distribution"`
	Seed         uint64             `json:"seed"`
	Steps        int                `json:"steps"`
	Timestamp    time.Time          `json:"timestamp"`
	States       [][]float64        `json:"states"`
	Omegas       [][]float64        `json:"omegas,omitempty"`
	Environment  [][][]float64      `json:"environment,omitempty"`
	Metrics      map[string]float64 `json:"metrics,omitempty"`
}

// SetResult copies the trajectory and any captured draws of res into r.
func (r *Record) SetResult(res *rds.Result) {
	r.Mode = res.Mode.String()
	r.Steps = res.Steps
	r.States = make([][]float64, len(res.Trajectory))
	for i, s := range res.Trajectory {
		r.States[i] = s
	}
	r.Omegas = nil
	if res.Omegas != nil {
		r.Omegas = make([][]float64, len(res.Omegas))
		for i, w := range res.Omegas {
			r.Omegas[i] = w
		}
	}
	r.Environment = nil
	if res.Environment != nil {
		r.Environment = make([][][]float64, len(res.Environment))
		for k, step := range res.Environment {
			r.Environment[k] = make([][]float64, len(step))
			for j, w := range step {
				r.Environment[k][j] = w
			}
		}
	}
}

// Write encodes rec in format: "csv" or "json". Annealed draws are written
// with WriteEnvironmentCSV.
func Write(w io.Writer, format string, rec *Record) error {
	switch format {
	case "json":
		return WriteJSON(w, rec)
	case "csv", "":
		traj := make(rds.Trajectory, len(rec.States))
		for i, s := range rec.States {
			traj[i] = s
		}
		if len(rec.Environment) > 0 {
			env := make([][]rds.Omega, len(rec.Environment))
			for k, step := range rec.Environment {
				env[k] = make([]rds.Omega, len(step))
				for j, o := range step {
					env[k][j] = o
				}
			}
			return WriteEnvironmentCSV(w, traj, env)
		}
		omegas := make([]rds.Omega, len(rec.Omegas))
		for i, o := range rec.Omegas {
			omegas[i] = o
		}
		return WriteCSV(w, traj, omegas)
	default:
		return errors.Newf("unknown export format: %s", format)
	}
}
