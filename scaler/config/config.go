package config

import (
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/metrics"
	"github.com/qscaler/qscaler/policy"
	"github.com/qscaler/qscaler/supervisor"
)

const (
	DefaultLoggingLevel = "info"
	DefaultInterval     = 60 * time.Second
)

var defaultHealthConfig = helpers.HealthConfig{
	ServerConfig: helpers.ServerConfig{
		Port: 8081,
	},
	ReadinessCheckEnabled: true,
}

type ScalingConfig struct {
	policy.Config   `yaml:",inline"`
	Interval        time.Duration `yaml:"interval"`
	CPUSampleWindow time.Duration `yaml:"cpu_sample_window"`
}

type QueueConfig struct {
	URL               string `yaml:"url"`
	metrics.SQSConfig `yaml:",inline"`
}

type SupervisorConfig struct {
	ConfigPath     string                          `yaml:"config_path"`
	Program        string                          `yaml:"program"`
	Command        []string                        `yaml:"command"`
	ReloadTimeout  time.Duration                   `yaml:"reload_timeout"`
	CircuitBreaker supervisor.CircuitBreakerConfig `yaml:"circuit_breaker"`
}

type Config struct {
	Logging        helpers.LoggingConfig `yaml:"logging"`
	Health         helpers.HealthConfig  `yaml:"health"`
	Scaling        ScalingConfig         `yaml:"scaling"`
	Queue          QueueConfig           `yaml:"queue"`
	Supervisor     SupervisorConfig      `yaml:"supervisor"`
	MetricsTimeout time.Duration         `yaml:"metrics_timeout"`
}

func defaultConfig() Config {
	return Config{
		Logging: helpers.LoggingConfig{Level: DefaultLoggingLevel},
		Health:  defaultHealthConfig,
		Scaling: ScalingConfig{
			Config: policy.Config{
				MaxCPUUsage: policy.DefaultMaxCPUUsage,
			},
			Interval:        DefaultInterval,
			CPUSampleWindow: metrics.DefaultCPUSampleWindow,
		},
		Supervisor: SupervisorConfig{
			Command:       supervisor.DefaultCommand,
			ReloadTimeout: supervisor.DefaultReloadTimeout,
			CircuitBreaker: supervisor.CircuitBreakerConfig{
				BackOffInitialInterval:  supervisor.DefaultBackOffInitialInterval,
				BackOffMaxInterval:      supervisor.DefaultBackOffMaxInterval,
				ConsecutiveFailureCount: supervisor.DefaultBreakerConsecutiveFailureCount,
			},
		},
		MetricsTimeout: metrics.DefaultTimeout,
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	conf := defaultConfig()
	return &conf
}

func LoadConfig(reader io.Reader) (*Config, error) {
	conf := defaultConfig()

	dec := yaml.NewDecoder(reader)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return nil, err
	}

	conf.Logging.Level = strings.ToLower(conf.Logging.Level)

	return &conf, nil
}

func (c *Config) Validate() error {
	if err := c.Scaling.Config.Validate(); err != nil {
		return err
	}

	if c.Scaling.Interval <= 0 {
		return fmt.Errorf("%w: scaling.interval is less than or equal to 0", helpers.ErrConfiguration)
	}

	if c.Scaling.CPUSampleWindow <= 0 {
		return fmt.Errorf("%w: scaling.cpu_sample_window is less than or equal to 0", helpers.ErrConfiguration)
	}

	if c.MetricsTimeout <= c.Scaling.CPUSampleWindow {
		return fmt.Errorf("%w: metrics_timeout must be greater than scaling.cpu_sample_window", helpers.ErrConfiguration)
	}

	if err := validateQueueURL(c.Queue.URL); err != nil {
		return err
	}

	if strings.TrimSpace(c.Supervisor.ConfigPath) == "" {
		return fmt.Errorf("%w: supervisor.config_path is empty", helpers.ErrConfiguration)
	}

	if len(c.Supervisor.Command) == 0 || c.Supervisor.Command[0] == "" {
		return fmt.Errorf("%w: supervisor.command is empty", helpers.ErrConfiguration)
	}

	if c.Supervisor.ReloadTimeout <= 0 {
		return fmt.Errorf("%w: supervisor.reload_timeout is less than or equal to 0", helpers.ErrConfiguration)
	}

	cb := c.Supervisor.CircuitBreaker
	if cb.ConsecutiveFailureCount <= 0 {
		return fmt.Errorf("%w: supervisor.circuit_breaker.consecutive_failure_count is less than or equal to 0", helpers.ErrConfiguration)
	}
	if cb.BackOffInitialInterval <= 0 || cb.BackOffMaxInterval < cb.BackOffInitialInterval {
		return fmt.Errorf("%w: supervisor.circuit_breaker back off intervals are invalid", helpers.ErrConfiguration)
	}

	if _, err := helpers.ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %s", helpers.ErrConfiguration, err.Error())
	}

	return c.Health.Validate()
}

func validateQueueURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: queue.url is empty", helpers.ErrConfiguration)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" || strings.Trim(u.Path, "/") == "" {
		return fmt.Errorf("%w: queue.url %q is not a valid queue url", helpers.ErrConfiguration, raw)
	}
	return nil
}
