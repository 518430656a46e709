package healthendpoint

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/qscaler/qscaler/models"
)

const (
	ResultSuccess           = "success"
	ResultMetricUnavailable = "metric_unavailable"
	ResultQueueUnreachable  = "queue_unreachable"
	ResultConfigWriteFailed = "config_write_failed"
	ResultReloadFailed      = "reload_failed"
)

type ScalerStatusCollector interface {
	prometheus.Collector
	ObserveCPU(cpuUsagePercent float64)
	ObserveQueueLength(queueLength int)
	ObserveDecision(decision models.Decision)
	ObserveApplied(processes int)
	ObserveIteration(result string)
	LastIterationSucceeded() bool
}

type scalerStatusCollector struct {
	cpuUsage          prometheus.Gauge
	queueLength       prometheus.Gauge
	desiredProcesses  prometheus.Gauge
	appliedProcesses  prometheus.Gauge
	iterations        *prometheus.CounterVec
	lastIterationFail atomic.Bool
}

func NewScalerStatusCollector(namespace, subSystem string) ScalerStatusCollector {
	return &scalerStatusCollector{
		cpuUsage: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "cpu_usage_percent",
			Help:      "Last sampled host cpu utilisation",
		}),
		queueLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "queue_length",
			Help:      "Last sampled approximate number of messages in the queue",
		}),
		desiredProcesses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "desired_processes",
			Help:      "Process count computed by the last scaling decision",
		}),
		appliedProcesses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "applied_processes",
			Help:      "Process count last applied to the supervisor",
		}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "iterations_total",
			Help:      "Number of scaling iterations by result",
		}, []string{"result"}),
	}
}

func (c *scalerStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.cpuUsage.Desc()
	ch <- c.queueLength.Desc()
	ch <- c.desiredProcesses.Desc()
	ch <- c.appliedProcesses.Desc()
	c.iterations.Describe(ch)
}

func (c *scalerStatusCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- c.cpuUsage
	ch <- c.queueLength
	ch <- c.desiredProcesses
	ch <- c.appliedProcesses
	c.iterations.Collect(ch)
}

func (c *scalerStatusCollector) ObserveCPU(cpuUsagePercent float64) {
	c.cpuUsage.Set(cpuUsagePercent)
}

func (c *scalerStatusCollector) ObserveQueueLength(queueLength int) {
	c.queueLength.Set(float64(queueLength))
}

func (c *scalerStatusCollector) ObserveDecision(decision models.Decision) {
	c.desiredProcesses.Set(float64(decision.DesiredProcessCount))
}

func (c *scalerStatusCollector) ObserveApplied(processes int) {
	c.appliedProcesses.Set(float64(processes))
}

func (c *scalerStatusCollector) ObserveIteration(result string) {
	c.iterations.WithLabelValues(result).Inc()
	c.lastIterationFail.Store(result != ResultSuccess)
}

func (c *scalerStatusCollector) LastIterationSucceeded() bool {
	return !c.lastIterationFail.Load()
}
