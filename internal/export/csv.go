package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

// WriteCSV writes one row per state: the step, the coordinates x0..x{d-1}
// and, when omegas is non-empty, the components w0..w{m-1} of the ω that
// produced the state. Row 0 leaves the ω columns empty.
func WriteCSV(w io.Writer, traj rds.Trajectory, omegas []rds.Omega) error {
	if len(traj) == 0 {
		return errors.Wrap(rds.ErrShapeMismatch, "export: empty trajectory")
	}
	if len(omegas) > 0 && len(omegas) != len(traj)-1 {
		return &rds.ShapeError{What: "omegas", Want: len(traj) - 1, Got: len(omegas)}
	}

	cw := csv.NewWriter(w)

	dim := len(traj[0])
	omegaDim := 0
	if len(omegas) > 0 {
		omegaDim = len(omegas[0])
	}

	header := []string{"step"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for i := 0; i < omegaDim; i++ {
		header = append(header, fmt.Sprintf("w%d", i))
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for k, x := range traj {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(k))
		for _, v := range x {
			row = append(row, formatFloat(v))
		}
		for i := 0; i < omegaDim; i++ {
			if k == 0 || i >= len(omegas[k-1]) {
				row = append(row, "")
				continue
			}
			row = append(row, formatFloat(omegas[k-1][i]))
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write step %d", k)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteEnvironmentCSV writes an annealed run: the step, the coordinates and,
// for each coordinate j, the components w{j}_{c} of the ω it drew at that
// step. Row 0 leaves the ω columns empty.
func WriteEnvironmentCSV(w io.Writer, traj rds.Trajectory, env [][]rds.Omega) error {
	if len(traj) == 0 {
		return errors.Wrap(rds.ErrShapeMismatch, "export: empty trajectory")
	}
	if len(env) != len(traj)-1 {
		return &rds.ShapeError{What: "environment steps", Want: len(traj) - 1, Got: len(env)}
	}

	dim := len(traj[0])
	omegaDim := 0
	for k, step := range env {
		if len(step) != dim {
			return &rds.ShapeError{What: fmt.Sprintf("environment step %d", k+1), Want: dim, Got: len(step)}
		}
		if k == 0 && dim > 0 {
			omegaDim = len(step[0])
		}
	}

	cw := csv.NewWriter(w)
	header := []string{"step"}
	for i := 0; i < dim; i++ {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	for j := 0; j < dim; j++ {
		for c := 0; c < omegaDim; c++ {
			header = append(header, fmt.Sprintf("w%d_%d", j, c))
		}
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for k, x := range traj {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(k))
		for _, v := range x {
			row = append(row, formatFloat(v))
		}
		for j := 0; j < dim; j++ {
			for c := 0; c < omegaDim; c++ {
				if k == 0 || c >= len(env[k-1][j]) {
					row = append(row, "")
					continue
				}
				row = append(row, formatFloat(env[k-1][j][c]))
			}
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write step %d", k)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV reads the x columns of a file written by WriteCSV back into a
// trajectory.
func ReadCSV(r io.Reader) (rds.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}
	if len(records) < 2 {
		return rds.Trajectory{}, nil
	}

	var cols []int
	for j, name := range records[0] {
		if strings.HasPrefix(name, "x") {
			cols = append(cols, j)
		}
	}
	if len(cols) == 0 {
		return nil, errors.New("read csv: no state columns")
	}

	traj := make(rds.Trajectory, 0, len(records)-1)
	for i, record := range records[1:] {
		state := make(rds.State, len(cols))
		for c, j := range cols {
			if j >= len(record) {
				return nil, errors.Newf("read csv: row %d has %d fields", i+1, len(record))
			}
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "read csv: row %d", i+1)
			}
			state[c] = v
		}
		traj = append(traj, state)
	}
	return traj, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
