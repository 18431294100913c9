package viz

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rdsim/internal/rds"
)

var sampleTraj = rds.Trajectory{{0.1, 0.9}, {0.2, 0.7}, {0.4, 0.5}, {0.8, 0.3}}

func TestNewRenderer(t *testing.T) {
	g := NewWithT(t)

	r, err := NewRenderer("")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r).To(BeAssignableToTypeOf(&ASCII{}))

	r, err = NewRenderer("html")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(r).To(BeAssignableToTypeOf(&HTML{}))

	_, err = NewRenderer("svg")
	g.Expect(err).To(HaveOccurred())
}

func TestASCIITrajectory(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	g.Expect(NewASCII().Trajectory(&buf, "rotation", sampleTraj)).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("rotation"))
	g.Expect(strings.Count(buf.String(), "\n")).To(BeNumerically(">=", 15))

	err := NewASCII().Trajectory(&buf, "empty", nil)
	g.Expect(errors.Is(err, rds.ErrShapeMismatch)).To(BeTrue())
}

func TestASCIITracking(t *testing.T) {
	g := NewWithT(t)
	hists, err := Histograms(sampleTraj, 4)
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer
	g.Expect(NewASCII().Tracking(&buf, "population", hists)).To(Succeed())

	out := buf.String()
	g.Expect(out).To(ContainSubstring("population"))
	g.Expect(out).To(ContainSubstring("step 0"))
	g.Expect(out).To(ContainSubstring("step 3"))
	g.Expect(out).To(ContainSubstring("[0.75,1.00)"))
}

func TestHTMLTrajectory(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer

	g.Expect(NewHTML().Trajectory(&buf, "logistic run", sampleTraj)).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("echarts"))
	g.Expect(buf.String()).To(ContainSubstring("logistic run"))
	g.Expect(buf.String()).To(ContainSubstring("x1"))
}

func TestHTMLTracking(t *testing.T) {
	g := NewWithT(t)
	hists, err := Histograms(sampleTraj, 4)
	g.Expect(err).NotTo(HaveOccurred())

	var buf bytes.Buffer
	g.Expect(NewHTML().Tracking(&buf, "population", hists)).To(Succeed())
	g.Expect(buf.String()).To(ContainSubstring("population: step 3"))
}

func TestHTMLFrames(t *testing.T) {
	g := NewWithT(t)
	hists := make([]Histogram, 10)
	for i := range hists {
		hists[i].Step = i
	}

	steps := func(hs []Histogram) []int {
		out := make([]int, len(hs))
		for i, h := range hs {
			out[i] = h.Step
		}
		return out
	}

	g.Expect(steps((&HTML{MaxFrames: 3}).frames(hists))).To(Equal([]int{0, 5, 9}))
	g.Expect(steps((&HTML{MaxFrames: 1}).frames(hists))).To(Equal([]int{9}))
	g.Expect((&HTML{}).frames(hists)).To(HaveLen(10))
}

func TestSparklineChart(t *testing.T) {
	g := NewWithT(t)

	line := SparklineChart([]float64{0, 0.5, 1}, 10)
	g.Expect(line).To(ContainSubstring("▁"))
	g.Expect(line).To(ContainSubstring("█"))
	g.Expect(SparklineChart(nil, 3)).To(Equal("───"))
}
