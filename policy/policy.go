package policy

import (
	"fmt"
	"math"

	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/models"
)

const DefaultMaxCPUUsage = 75.0

// Config bounds the scaling decision. It is built once at startup.
type Config struct {
	MinProcesses     int     `yaml:"min_processes" json:"min_processes"`
	MaxProcesses     int     `yaml:"max_processes" json:"max_processes"`
	ScaleFactor      float64 `yaml:"scale_factor" json:"scale_factor"`
	MaxCPUUsage      float64 `yaml:"max_cpu_usage" json:"max_cpu_usage"`
	BacklogThreshold int     `yaml:"backlog_threshold" json:"backlog_threshold"`
}

func (c *Config) Validate() error {
	if c.MinProcesses < 1 {
		return fmt.Errorf("%w: scaling.min_processes must be at least 1", helpers.ErrConfiguration)
	}
	if c.MaxProcesses < c.MinProcesses {
		return fmt.Errorf("%w: scaling.max_processes (%d) is less than scaling.min_processes (%d)", helpers.ErrConfiguration, c.MaxProcesses, c.MinProcesses)
	}
	if !(c.ScaleFactor > 0) || math.IsInf(c.ScaleFactor, 0) {
		return fmt.Errorf("%w: scaling.scale_factor must be a positive number", helpers.ErrConfiguration)
	}
	if !(c.MaxCPUUsage > 0 && c.MaxCPUUsage <= 100) {
		return fmt.Errorf("%w: scaling.max_cpu_usage must be in (0, 100]", helpers.ErrConfiguration)
	}
	if c.BacklogThreshold < 0 {
		return fmt.Errorf("%w: scaling.backlog_threshold is less than 0", helpers.ErrConfiguration)
	}
	return nil
}

// Decide maps a sample to a process count within [MinProcesses, MaxProcesses].
// It has no side effects.
func Decide(sample models.Sample, conf Config) models.Decision {
	if sample.CPUUsagePercent >= conf.MaxCPUUsage {
		return models.Decision{
			DesiredProcessCount: conf.MinProcesses,
			Reason:              fmt.Sprintf("cpu usage %.1f%% reached the ceiling of %.1f%%", sample.CPUUsagePercent, conf.MaxCPUUsage),
		}
	}

	if sample.QueueLength <= conf.BacklogThreshold || sample.QueueLength <= 0 || !(conf.ScaleFactor > 0) {
		return models.Decision{
			DesiredProcessCount: conf.MinProcesses,
			Reason:              fmt.Sprintf("queue length %d is within the backlog threshold %d", sample.QueueLength, conf.BacklogThreshold),
		}
	}

	target := math.Ceil(float64(sample.QueueLength) / conf.ScaleFactor)
	reason := fmt.Sprintf("%d messages at %g messages per process", sample.QueueLength, conf.ScaleFactor)

	desired := conf.MaxProcesses
	switch {
	case target < float64(conf.MinProcesses):
		desired = conf.MinProcesses
		reason = fmt.Sprintf("%s, limited by min processes %d", reason, conf.MinProcesses)
	case target > float64(conf.MaxProcesses):
		reason = fmt.Sprintf("%s, limited by max processes %d", reason, conf.MaxProcesses)
	default:
		desired = int(target)
	}

	return models.Decision{DesiredProcessCount: desired, Reason: reason}
}
