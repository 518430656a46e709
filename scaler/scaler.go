package scaler

import (
	"context"
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"

	"github.com/qscaler/qscaler/healthendpoint"
	"github.com/qscaler/qscaler/models"
	"github.com/qscaler/qscaler/policy"
)

type MetricsSource interface {
	SampleCPU(ctx context.Context) (float64, error)
	SampleQueueLength(ctx context.Context, queueURL string) (int, error)
}

type ProcessCountApplier interface {
	Apply(ctx context.Context, processes int) error
}

// Scaler periodically samples the host and the queue, decides a process
// count and applies it. Iterations never overlap.
type Scaler struct {
	source    MetricsSource
	applier   ProcessCountApplier
	collector healthendpoint.ScalerStatusCollector
	policy    policy.Config
	queueURL  string
	interval  time.Duration
	clock     clock.Clock
	logger    lager.Logger
}

func NewScaler(logger lager.Logger, clock clock.Clock, interval time.Duration, conf policy.Config, queueURL string,
	source MetricsSource, applier ProcessCountApplier, collector healthendpoint.ScalerStatusCollector) *Scaler {
	return &Scaler{
		source:    source,
		applier:   applier,
		collector: collector,
		policy:    conf,
		queueURL:  queueURL,
		interval:  interval,
		clock:     clock,
		logger:    logger.Session("scaler"),
	}
}

func (s *Scaler) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := s.clock.NewTicker(s.interval)
	close(ready)

	s.logger.Info("started", lager.Data{"interval": s.interval, "queue_url": s.queueURL})

	for {
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = s.RunOnce(ctx)
		}()

		select {
		case <-signals:
			cancel()
			<-done
			return s.stop(ticker)
		case <-done:
		}

		select {
		case <-signals:
			return s.stop(ticker)
		case <-ticker.C():
		}
	}
}

func (s *Scaler) stop(ticker clock.Ticker) error {
	ticker.Stop()
	s.logger.Info("stopped")
	return nil
}

// RunOnce performs a single sample, decide and apply iteration. Failures are
// logged and recorded; the error is returned for callers that want it.
func (s *Scaler) RunOnce(ctx context.Context) error {
	logger := s.logger.Session("iteration", lager.Data{"iteration_id": uuid.NewString()})

	cpuUsage, err := s.source.SampleCPU(ctx)
	if err != nil {
		logger.Error("failed-to-sample-cpu", err)
		s.collector.ObserveIteration(healthendpoint.ResultMetricUnavailable)
		return err
	}
	s.collector.ObserveCPU(cpuUsage)

	queueLength, err := s.source.SampleQueueLength(ctx, s.queueURL)
	if err != nil {
		logger.Error("failed-to-sample-queue-length", err, lager.Data{"queue_url": s.queueURL})
		s.collector.ObserveIteration(healthendpoint.ResultQueueUnreachable)
		return err
	}
	s.collector.ObserveQueueLength(queueLength)

	sample := models.Sample{CPUUsagePercent: cpuUsage, QueueLength: queueLength}
	decision := policy.Decide(sample, s.policy)
	s.collector.ObserveDecision(decision)
	logger.Info("decided", lager.Data{
		"cpu_usage_percent": sample.CPUUsagePercent,
		"queue_length":      sample.QueueLength,
		"processes":         decision.DesiredProcessCount,
		"reason":            decision.Reason,
	})

	if err := s.applier.Apply(ctx, decision.DesiredProcessCount); err != nil {
		logger.Error("failed-to-apply-process-count", err, lager.Data{"processes": decision.DesiredProcessCount})
		s.collector.ObserveIteration(applyResult(err))
		return err
	}
	s.collector.ObserveApplied(decision.DesiredProcessCount)
	s.collector.ObserveIteration(healthendpoint.ResultSuccess)

	return nil
}

// applyResult tells a reload that supervisord rejected apart from a file that
// could not be updated.
func applyResult(err error) string {
	if errors.Is(err, models.ErrReloadFailed) {
		return healthendpoint.ResultReloadFailed
	}
	return healthendpoint.ResultConfigWriteFailed
}
