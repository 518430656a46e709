package metrics

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const DefaultTimeout = 10 * time.Second

// Source bounds every metric read with a timeout.
type Source struct {
	cpu     CPUSampler
	queue   QueueLengthFetcher
	timeout time.Duration
	logger  lager.Logger
}

func NewSource(cpu CPUSampler, queue QueueLengthFetcher, timeout time.Duration, logger lager.Logger) *Source {
	return &Source{
		cpu:     cpu,
		queue:   queue,
		timeout: timeout,
		logger:  logger.Session("metrics-source"),
	}
}

func (s *Source) SampleCPU(ctx context.Context) (float64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	usage, err := s.cpu.SampleCPU(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("sampled-cpu", lager.Data{"cpu_usage_percent": usage})
	return usage, nil
}

func (s *Source) SampleQueueLength(ctx context.Context, queueURL string) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	length, err := s.queue.QueueLength(ctx, queueURL)
	if err != nil {
		return 0, err
	}
	s.logger.Debug("sampled-queue-length", lager.Data{"queue_url": queueURL, "queue_length": length})
	return length, nil
}

func (s *Source) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
