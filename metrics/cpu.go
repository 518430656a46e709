package metrics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/qscaler/qscaler/models"
	"github.com/shirou/gopsutil/cpu"
)

const DefaultCPUSampleWindow = time.Second

type CPUSampler interface {
	SampleCPU(ctx context.Context) (float64, error)
}

// PercentFunc matches cpu.PercentWithContext.
type PercentFunc func(ctx context.Context, interval time.Duration, percpu bool) ([]float64, error)

var _ CPUSampler = &HostCPUSampler{}

// HostCPUSampler averages host-wide utilisation over a short window.
type HostCPUSampler struct {
	window  time.Duration
	percent PercentFunc
}

func NewHostCPUSampler(window time.Duration) *HostCPUSampler {
	return NewHostCPUSamplerWithPercentFunc(window, cpu.PercentWithContext)
}

func NewHostCPUSamplerWithPercentFunc(window time.Duration, percent PercentFunc) *HostCPUSampler {
	return &HostCPUSampler{
		window:  window,
		percent: percent,
	}
}

func (s *HostCPUSampler) SampleCPU(ctx context.Context) (float64, error) {
	percents, err := s.percent(ctx, s.window, false)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", models.ErrMetricUnavailable, err.Error())
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("%w: no cpu utilisation reported", models.ErrMetricUnavailable)
	}

	usage := percents[0]
	if math.IsNaN(usage) {
		return 0, fmt.Errorf("%w: cpu utilisation is not a number", models.ErrMetricUnavailable)
	}
	return math.Min(math.Max(usage, 0), 100), nil
}
