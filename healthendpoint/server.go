package healthendpoint

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/qscaler/qscaler/helpers"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/http_server"
)

// NewServerWithBasicAuth serves readiness and prometheus metrics. Metrics are
// behind basic auth when credentials are configured.
func NewServerWithBasicAuth(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (ifrit.Runner, error) {
	healthRouter, err := NewHealthRouter(conf, healthCheckers, logger, gatherer)
	if err != nil {
		return nil, err
	}

	var addr string
	if os.Getenv("QSCALER_TEST_RUN") == "true" {
		addr = fmt.Sprintf("localhost:%d", conf.ServerConfig.Port)
	} else {
		addr = fmt.Sprintf("0.0.0.0:%d", conf.ServerConfig.Port)
	}

	logger.Info("new-health-server", lager.Data{"addr": addr, "basic_auth": conf.BasicAuthEnabled()})
	return http_server.New(addr, healthRouter), nil
}

func NewHealthRouter(conf helpers.HealthConfig, healthCheckers []Checker, logger lager.Logger, gatherer prometheus.Gatherer) (*mux.Router, error) {
	router := mux.NewRouter()
	if conf.ReadinessCheckEnabled {
		router.Handle("/health/readiness", readiness(healthCheckers))
	}

	promHandler := promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	if !conf.BasicAuthEnabled() {
		router.PathPrefix("").Handler(promHandler)
		return router, nil
	}

	basicAuthentication, err := helpers.CreateBasicAuthMiddleware(logger, conf.BasicAuth)
	if err != nil {
		return nil, err
	}

	everything := router.PathPrefix("").Subrouter()
	everything.Use(basicAuthentication.Middleware)
	everything.PathPrefix("").Handler(promHandler)

	return router, nil
}
