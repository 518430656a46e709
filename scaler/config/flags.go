package config

import (
	"flag"
)

// Flags holds command-line overrides. Only flags that were set on the command
// line are applied on top of the configuration file.
type Flags struct {
	fs *flag.FlagSet

	minProcesses int
	maxProcesses int
	scaleFactor  float64
	configPath   string
	queueURL     string
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.IntVar(&f.minProcesses, "min_num_process", 0, "minimum number of processes to keep")
	fs.IntVar(&f.maxProcesses, "max_num_process", 0, "maximum number of processes to run")
	fs.Float64Var(&f.scaleFactor, "scale_factor", 0, "queued messages per process")
	fs.StringVar(&f.configPath, "supervisor_config_path", "", "supervisor program configuration file")
	fs.StringVar(&f.queueURL, "queue_url", "", "url of the SQS queue")
	return f
}

func (f *Flags) Apply(conf *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "min_num_process":
			conf.Scaling.MinProcesses = f.minProcesses
		case "max_num_process":
			conf.Scaling.MaxProcesses = f.maxProcesses
		case "scale_factor":
			conf.Scaling.ScaleFactor = f.scaleFactor
		case "supervisor_config_path":
			conf.Supervisor.ConfigPath = f.configPath
		case "queue_url":
			conf.Queue.URL = f.queueURL
		}
	})
}
