package policy_test

import (
	"math/rand"

	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/models"
	"github.com/qscaler/qscaler/policy"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var conf policy.Config

	BeforeEach(func() {
		conf = policy.Config{
			MinProcesses: 1,
			MaxProcesses: 5,
			ScaleFactor:  10,
			MaxCPUUsage:  80,
		}
	})

	Describe("Decide", func() {
		DescribeTable("desired process count",
			func(min, max int, scaleFactor, cpu float64, queueLength int, expected int) {
				conf.MinProcesses = min
				conf.MaxProcesses = max
				conf.ScaleFactor = scaleFactor
				decision := policy.Decide(models.Sample{CPUUsagePercent: cpu, QueueLength: queueLength}, conf)
				Expect(decision.DesiredProcessCount).To(Equal(expected))
			},
			Entry("backlog is clamped to max", 1, 5, 10.0, 50.0, 42, 5),
			Entry("cpu saturated holds min regardless of backlog", 1, 5, 10.0, 85.0, 42, 1),
			Entry("small backlog is clamped up to min", 2, 3, 10.0, 10.0, 5, 2),
			Entry("backlog rounds up", 1, 10, 10.0, 10.0, 21, 3),
			Entry("backlog divides exactly", 1, 10, 10.0, 10.0, 30, 3),
			Entry("fractional scale factor", 1, 10, 2.5, 10.0, 6, 3),
			Entry("empty queue yields min", 3, 10, 10.0, 0.0, 0, 3),
			Entry("cpu exactly at the ceiling yields min", 1, 5, 10.0, 80.0, 42, 1),
			Entry("cpu just below the ceiling scales", 1, 5, 10.0, 79.9, 42, 5),
			Entry("huge backlog stays within max", 1, 7, 1.0, 0.0, 1<<40, 7),
		)

		It("explains a max clamp", func() {
			decision := policy.Decide(models.Sample{CPUUsagePercent: 50, QueueLength: 42}, conf)
			Expect(decision.Reason).To(ContainSubstring("limited by max processes 5"))
		})

		It("explains a min clamp", func() {
			conf.MinProcesses = 2
			conf.MaxProcesses = 3
			decision := policy.Decide(models.Sample{CPUUsagePercent: 10, QueueLength: 5}, conf)
			Expect(decision.Reason).To(ContainSubstring("limited by min processes 2"))
		})

		It("explains a cpu guard", func() {
			decision := policy.Decide(models.Sample{CPUUsagePercent: 85, QueueLength: 42}, conf)
			Expect(decision.Reason).To(ContainSubstring("reached the ceiling"))
		})

		Context("with a backlog threshold", func() {
			BeforeEach(func() {
				conf.MinProcesses = 1
				conf.MaxProcesses = 10
				conf.BacklogThreshold = 20
			})

			It("holds min while the backlog is at or below the threshold", func() {
				Expect(policy.Decide(models.Sample{QueueLength: 20}, conf).DesiredProcessCount).To(Equal(1))
			})

			It("scales once the backlog exceeds the threshold", func() {
				Expect(policy.Decide(models.Sample{QueueLength: 21}, conf).DesiredProcessCount).To(Equal(3))
			})
		})

		It("never divides by a non-positive scale factor", func() {
			conf.ScaleFactor = 0
			Expect(policy.Decide(models.Sample{QueueLength: 100}, conf).DesiredProcessCount).To(Equal(1))
		})

		It("always stays within bounds and is deterministic", func() {
			r := rand.New(rand.NewSource(42))
			for i := 0; i < 5000; i++ {
				min := 1 + r.Intn(10)
				c := policy.Config{
					MinProcesses:     min,
					MaxProcesses:     min + r.Intn(20),
					ScaleFactor:      0.5 + r.Float64()*200,
					MaxCPUUsage:      1 + r.Float64()*99,
					BacklogThreshold: r.Intn(50),
				}
				s := models.Sample{CPUUsagePercent: r.Float64() * 100, QueueLength: r.Intn(100000)}

				d := policy.Decide(s, c)
				Expect(d.DesiredProcessCount).To(BeNumerically(">=", c.MinProcesses))
				Expect(d.DesiredProcessCount).To(BeNumerically("<=", c.MaxProcesses))
				Expect(policy.Decide(s, c)).To(Equal(d))

				if s.CPUUsagePercent >= c.MaxCPUUsage {
					Expect(d.DesiredProcessCount).To(Equal(c.MinProcesses))
				}
				Expect(policy.Decide(models.Sample{CPUUsagePercent: s.CPUUsagePercent}, c).DesiredProcessCount).To(Equal(c.MinProcesses))
			}
		})
	})

	Describe("Validate", func() {
		It("accepts a valid config", func() {
			Expect(conf.Validate()).To(Succeed())
		})

		DescribeTable("rejects invalid configs",
			func(mutate func(*policy.Config), message string) {
				mutate(&conf)
				err := conf.Validate()
				Expect(err).To(MatchError(helpers.ErrConfiguration))
				Expect(err).To(MatchError(ContainSubstring(message)))
			},
			Entry("min below 1", func(c *policy.Config) { c.MinProcesses = 0 }, "scaling.min_processes must be at least 1"),
			Entry("max below min", func(c *policy.Config) { c.MaxProcesses = 0 }, "scaling.max_processes (0) is less than scaling.min_processes (1)"),
			Entry("zero scale factor", func(c *policy.Config) { c.ScaleFactor = 0 }, "scaling.scale_factor must be a positive number"),
			Entry("negative scale factor", func(c *policy.Config) { c.ScaleFactor = -3 }, "scaling.scale_factor must be a positive number"),
			Entry("zero cpu ceiling", func(c *policy.Config) { c.MaxCPUUsage = 0 }, "scaling.max_cpu_usage must be in (0, 100]"),
			Entry("cpu ceiling above 100", func(c *policy.Config) { c.MaxCPUUsage = 101 }, "scaling.max_cpu_usage must be in (0, 100]"),
			Entry("negative backlog threshold", func(c *policy.Config) { c.BacklogThreshold = -1 }, "scaling.backlog_threshold is less than 0"),
		)
	})
})
