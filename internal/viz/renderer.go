package viz

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/rdsim/internal/rds"
)

// Renderer draws trajectories and tracking histograms to a writer.
type Renderer interface {
	Trajectory(w io.Writer, title string, traj rds.Trajectory) error
	Tracking(w io.Writer, title string, hists []Histogram) error
}

// NewRenderer returns the renderer registered under name: "ascii" (the
// default) or "html".
func NewRenderer(name string) (Renderer, error) {
	switch name {
	case "", "ascii":
		return NewASCII(), nil
	case "html":
		return NewHTML(), nil
	default:
		return nil, errors.Newf("unknown renderer: %s (want ascii or html)", name)
	}
}
