package healthendpoint

import (
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterCollectors registers col, and the process and go runtime
// collectors when includeDefault is set. Registration errors are logged only.
func RegisterCollectors(registrar prometheus.Registerer, col []prometheus.Collector, includeDefault bool, logger lager.Logger) {
	if includeDefault {
		col = append([]prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
				PidFn: func() (int, error) {
					return os.Getpid(), nil
				},
			}),
			collectors.NewGoCollector(),
		}, col...)
	}

	for _, c := range col {
		if err := registrar.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err, lager.Data{"collector": c})
		}
	}
}
