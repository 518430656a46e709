package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_metrics_source.go ../scaler MetricsSource
//counterfeiter:generate -o ./fake_process_count_applier.go ../scaler ProcessCountApplier
//counterfeiter:generate -o ./fake_cpu_sampler.go ../metrics CPUSampler
//counterfeiter:generate -o ./fake_queue_length_fetcher.go ../metrics QueueLengthFetcher
//counterfeiter:generate -o ./fake_sqsapi.go ../metrics SQSAPI
//counterfeiter:generate -o ./fake_reloader.go ../supervisor Reloader
//counterfeiter:generate -o ./fake_command_runner.go ../supervisor CommandRunner
