package supervisor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"
	"github.com/qscaler/qscaler/models"
	circuit "github.com/rubyist/circuitbreaker"
)

const (
	DefaultReloadTimeout                  = 30 * time.Second
	DefaultBackOffInitialInterval         = 5 * time.Minute
	DefaultBackOffMaxInterval             = 2 * time.Hour
	DefaultBreakerConsecutiveFailureCount = 3
)

// DefaultCommand matches a supervisord owned by root; set supervisor.command to
// ["supervisorctl"] when qscaler can reach the control socket directly.
var DefaultCommand = []string{"sudo", "supervisorctl"}

type Reloader interface {
	Reload(ctx context.Context) error
}

type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type ExecCommandRunner struct{}

func (ExecCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

type CircuitBreakerConfig struct {
	BackOffInitialInterval  time.Duration `yaml:"back_off_initial_interval" json:"back_off_initial_interval"`
	BackOffMaxInterval      time.Duration `yaml:"back_off_max_interval" json:"back_off_max_interval"`
	ConsecutiveFailureCount int64         `yaml:"consecutive_failure_count" json:"consecutive_failure_count"`
}

func NewBreaker(conf CircuitBreakerConfig) *circuit.Breaker {
	bf := backoff.NewExponentialBackOff()
	bf.InitialInterval = conf.BackOffInitialInterval
	bf.MaxInterval = conf.BackOffMaxInterval
	bf.RandomizationFactor = 0
	bf.Multiplier = 2
	bf.MaxElapsedTime = 0
	bf.Reset()

	return circuit.NewBreakerWithOptions(&circuit.Options{
		BackOff:    bf,
		ShouldTrip: circuit.ConsecutiveTripFunc(conf.ConsecutiveFailureCount),
	})
}

var _ Reloader = &SupervisorctlReloader{}

// SupervisorctlReloader runs `reread` followed by `update` so supervisord picks
// up a changed numprocs and starts or stops processes to match.
type SupervisorctlReloader struct {
	command []string
	runner  CommandRunner
	timeout time.Duration
	breaker *circuit.Breaker
	logger  lager.Logger
}

func NewSupervisorctlReloader(command []string, runner CommandRunner, timeout time.Duration, breaker *circuit.Breaker, logger lager.Logger) *SupervisorctlReloader {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &SupervisorctlReloader{
		command: command,
		runner:  runner,
		timeout: timeout,
		breaker: breaker,
		logger:  logger.Session("supervisorctl-reloader"),
	}
}

func (r *SupervisorctlReloader) Reload(ctx context.Context) error {
	if r.breaker == nil {
		return r.reload(ctx)
	}

	if r.breaker.Tripped() {
		r.logger.Info("circuit-tripped", lager.Data{"consecutive_failures": r.breaker.ConsecFailures()})
	}
	err := r.breaker.Call(func() error { return r.reload(ctx) }, 0)
	if errors.Is(err, circuit.ErrBreakerOpen) {
		return fmt.Errorf("%w: supervisorctl circuit open after %d consecutive failures", models.ErrReloadFailed, r.breaker.ConsecFailures())
	}
	return err
}

func (r *SupervisorctlReloader) reload(ctx context.Context) error {
	for _, action := range []string{"reread", "update"} {
		if err := r.run(ctx, action); err != nil {
			return err
		}
	}
	r.logger.Info("reloaded")
	return nil
}

func (r *SupervisorctlReloader) run(ctx context.Context, action string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	args := append(append([]string{}, r.command[1:]...), action)
	output, err := r.runner.Run(ctx, r.command[0], args...)
	if err != nil {
		r.logger.Error("failed-to-run-supervisorctl", err, lager.Data{"action": action, "output": string(output)})
		return fmt.Errorf("%w: supervisorctl %s: %s: %s", models.ErrReloadFailed, action, err.Error(), strings.TrimSpace(string(output)))
	}
	r.logger.Debug("ran-supervisorctl", lager.Data{"action": action, "output": string(output)})
	return nil
}
