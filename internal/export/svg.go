package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/rdsim/internal/analysis"
	"github.com/san-kum/rdsim/internal/viz"
)

// WriteCanvasSVG draws every dot of a Braille canvas as a circle of the
// given scale.
func WriteCanvasSVG(w io.Writer, canvas *viz.Canvas, scale float64) error {
	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale

	var sb strings.Builder
	writeHeader(&sb, width, height)
	sb.WriteString("<g fill=\"#00ff00\">\n")

	r := scale * 0.4
	for y := 0; y < canvas.SubHeight(); y++ {
		for x := 0; x < canvas.SubWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := (float64(x) + 0.5) * scale
			cy := (float64(y) + 0.5) * scale
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteReturnMapSVG plots return map points on the unit square, size pixels
// wide, with the diagonal drawn for reference.
func WriteReturnMapSVG(w io.Writer, points []analysis.Point, size int, color string) error {
	s := float64(size)

	var sb strings.Builder
	writeHeader(&sb, s, s)
	fmt.Fprintf(&sb, "<line x1=\"0\" y1=\"%.1f\" x2=\"%.1f\" y2=\"0\" stroke=\"#444466\" stroke-width=\"1\"/>\n", s, s)
	fmt.Fprintf(&sb, "<g fill=\"%s\">\n", color)
	for _, p := range points {
		fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"1.5\"/>\n", p.X*s, s-p.Y*s)
	}
	sb.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeHeader(sb *strings.Builder, width, height float64) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)
}
