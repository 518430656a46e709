package metrics_test

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/qscaler/qscaler/metrics"
	"github.com/qscaler/qscaler/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HostCPUSampler", func() {
	var (
		percents   []float64
		percentErr error
		window     time.Duration
		percpu     bool
		usage      float64
		err        error
	)

	BeforeEach(func() {
		percents = []float64{42.5}
		percentErr = nil
	})

	JustBeforeEach(func() {
		sampler := metrics.NewHostCPUSamplerWithPercentFunc(2*time.Second, func(_ context.Context, interval time.Duration, perCPU bool) ([]float64, error) {
			window = interval
			percpu = perCPU
			return percents, percentErr
		})
		usage, err = sampler.SampleCPU(context.Background())
	})

	It("returns the host-wide utilisation over the window", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(usage).To(Equal(42.5))
		Expect(window).To(Equal(2 * time.Second))
		Expect(percpu).To(BeFalse())
	})

	Context("when the utilisation is out of range", func() {
		BeforeEach(func() {
			percents = []float64{100.4}
		})

		It("clamps it to 100", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(usage).To(Equal(100.0))
		})
	})

	Context("when reading the utilisation fails", func() {
		BeforeEach(func() {
			percentErr = errors.New("open /proc/stat: no such file or directory")
		})

		It("returns a metric unavailable error", func() {
			Expect(err).To(MatchError(models.ErrMetricUnavailable))
			Expect(err).To(MatchError(ContainSubstring("/proc/stat")))
		})
	})

	Context("when nothing is reported", func() {
		BeforeEach(func() {
			percents = nil
		})

		It("returns a metric unavailable error", func() {
			Expect(err).To(MatchError(models.ErrMetricUnavailable))
		})
	})

	Context("when the utilisation is not a number", func() {
		BeforeEach(func() {
			percents = []float64{math.NaN()}
		})

		It("returns a metric unavailable error", func() {
			Expect(err).To(MatchError(models.ErrMetricUnavailable))
		})
	})
})
