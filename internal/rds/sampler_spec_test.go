package rds_test

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rdsim/internal/rds"
)

type uniformLaw struct {
	rng *rand.Rand
}

func (u *uniformLaw) Draw(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = u.rng.Float64()
	}
	return out
}

var _ = Describe("Sampler", func() {
	var model *rds.Model

	BeforeEach(func() {
		var err error
		law := &uniformLaw{rng: rand.New(rand.NewSource(2024))}
		model, err = rds.NewModel(rds.UnitInterval, 1, law, func(w rds.Omega, x float64) float64 {
			return 2*x + 0.3*w[0]
		})
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("rejects non-positive iteration counts",
		func(n int) {
			_, err := rds.Sample(model, n, rds.State{0.5}, rds.Options{})
			Expect(errors.Is(err, rds.ErrInvalidIterationCount)).To(BeTrue())
		},
		Entry("zero", 0),
		Entry("negative", -5),
	)

	DescribeTable("produces n+1 states inside the unit interval",
		func(mode rds.Mode, n int) {
			x0 := rds.State{0, 0.3, 0.999, 1}
			res, err := rds.Sample(model, n, x0, rds.Options{Mode: mode})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Trajectory).To(HaveLen(n + 1))
			Expect(res.Trajectory[0]).To(Equal(x0))
			for _, x := range res.Trajectory[1:] {
				Expect(x).To(HaveLen(len(x0)))
				for _, v := range x {
					Expect(v).To(BeNumerically(">=", 0))
					Expect(v).To(BeNumerically("<", 1))
				}
			}
		},
		Entry("quenched, one step", rds.Quenched, 1),
		Entry("quenched, many steps", rds.Quenched, 200),
		Entry("annealed, one step", rds.Annealed, 1),
		Entry("annealed, many steps", rds.Annealed, 200),
	)

	Context("with captured omegas", func() {
		It("replays the quenched trajectory exactly", func() {
			x0 := rds.State{0.12, 0.5}
			res, err := rds.Sample(model, 30, x0, rds.Options{CaptureOmegas: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Omegas).To(HaveLen(30))

			x := x0.Clone()
			for k, w := range res.Omegas {
				next := make(rds.State, len(x))
				for i, v := range x {
					next[i] = rds.Wrap(model.Map(w, v))
				}
				x = next
				Expect(x).To(Equal(res.Trajectory[k+1]))
			}
		})

		It("feeds TimeSeriesOmega and EmpiricalAverage", func() {
			res, err := rds.Sample(model, 10, rds.State{0.4}, rds.Options{CaptureOmegas: true})
			Expect(err).NotTo(HaveOccurred())

			series, err := rds.TimeSeriesOmega(res.Trajectory, res.Omegas, func(w rds.Omega, x float64) float64 {
				return w[0]
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(series[0]).To(Equal(rds.State{0.4}))

			avg, err := rds.EmpiricalAverage(series[1:])
			Expect(err).NotTo(HaveOccurred())
			sum := 0.0
			for _, w := range res.Omegas {
				sum += w[0]
			}
			Expect(math.Abs(avg[0] - sum/10)).To(BeNumerically("<", 1e-12))
		})
	})

	It("reports the offending coordinate of x0", func() {
		_, err := rds.Sample(model, 4, rds.State{0.2, 1.5}, rds.Options{Mode: rds.Annealed})
		var de *rds.DomainError
		Expect(errors.As(err, &de)).To(BeTrue())
		Expect(de.Index).To(Equal(1))
		Expect(de.Value).To(Equal(1.5))
	})
})
