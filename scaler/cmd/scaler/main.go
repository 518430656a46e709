package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/qscaler/qscaler/healthendpoint"
	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/metrics"
	"github.com/qscaler/qscaler/scaler"
	"github.com/qscaler/qscaler/scaler/config"
	"github.com/qscaler/qscaler/supervisor"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	overrides := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	conf := config.Default()
	if path != "" {
		configFile, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
			os.Exit(1)
		}

		conf, err = config.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
			os.Exit(1)
		}
		configFile.Close()
	}
	overrides.Apply(conf)

	err := conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "qscaler")
	scalerClock := clock.NewClock()

	programFile := supervisor.NewProgramFile(conf.Supervisor.ConfigPath, conf.Supervisor.Program)
	current, err := programFile.CurrentProcesses()
	if err != nil {
		logger.Error("failed-to-read-supervisor-config", err, lager.Data{"path": conf.Supervisor.ConfigPath, "program": conf.Supervisor.Program})
		os.Exit(1)
	}

	sqsClient, err := metrics.NewSQSClient(context.Background(), conf.Queue.SQSConfig)
	if err != nil {
		logger.Error("failed-to-create-sqs-client", err, lager.Data{"region": conf.Queue.Region, "endpoint": conf.Queue.Endpoint})
		os.Exit(1)
	}

	source := metrics.NewSource(
		metrics.NewHostCPUSampler(conf.Scaling.CPUSampleWindow),
		metrics.NewSQSQueueLengthFetcher(sqsClient, logger),
		conf.MetricsTimeout,
		logger,
	)

	reloader := supervisor.NewSupervisorctlReloader(
		conf.Supervisor.Command,
		supervisor.ExecCommandRunner{},
		conf.Supervisor.ReloadTimeout,
		supervisor.NewBreaker(conf.Supervisor.CircuitBreaker),
		logger,
	)
	writer := supervisor.NewWriter(programFile, reloader, logger)

	collector := healthendpoint.NewScalerStatusCollector("qscaler", "scaler")
	promRegistry := prometheus.NewRegistry()
	healthendpoint.RegisterCollectors(promRegistry, []prometheus.Collector{collector}, true, logger.Session("scaler-prometheus"))

	queueScaler := scaler.NewScaler(logger, scalerClock, conf.Scaling.Interval, conf.Scaling.Config, conf.Queue.URL, source, writer, collector)

	healthServer, err := healthendpoint.NewServerWithBasicAuth(conf.Health, []healthendpoint.Checker{
		healthendpoint.FileChecker("supervisor_config", programFile),
		healthendpoint.IterationChecker("scaling_loop", collector),
	}, logger.Session("health-server"), promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}

	members := grouper.Members{
		{Name: "health_server", Runner: healthServer},
		{Name: "scaler", Runner: queueScaler},
	}

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))

	logger.Info("started", lager.Data{"current_processes": current})

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}
