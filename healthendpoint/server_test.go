package healthendpoint_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"
	"github.com/qscaler/qscaler/healthendpoint"
	"github.com/qscaler/qscaler/helpers"
	"github.com/qscaler/qscaler/models"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"github.com/prometheus/client_golang/prometheus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type testPinger struct {
	err error
}

func (p *testPinger) Ping() error {
	return p.err
}

var _ = Describe("Health router", func() {
	var (
		conf      helpers.HealthConfig
		checkers  []healthendpoint.Checker
		pinger    *testPinger
		collector healthendpoint.ScalerStatusCollector
		router    *mux.Router
	)

	get := func(path string, auth ...string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if len(auth) == 2 {
			req.SetBasicAuth(auth[0], auth[1])
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	BeforeEach(func() {
		conf = helpers.HealthConfig{ReadinessCheckEnabled: true}
		pinger = &testPinger{}
		collector = healthendpoint.NewScalerStatusCollector("qscaler", "scaler")
		checkers = []healthendpoint.Checker{
			healthendpoint.FileChecker("supervisor_config", pinger),
			healthendpoint.IterationChecker("scaler", collector),
		}
	})

	JustBeforeEach(func() {
		registry := prometheus.NewRegistry()
		Expect(registry.Register(collector)).To(Succeed())

		var err error
		router, err = healthendpoint.NewHealthRouter(conf, checkers, lagertest.NewTestLogger("health-test"), registry)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("/health/readiness", func() {
		It("is UP when every check passes", func() {
			rec := get("/health/readiness")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))
			Expect(rec.Body.String()).To(MatchJSON(`{
				"overall_status": "UP",
				"checks": [
					{"name": "supervisor_config", "type": "file", "status": "UP"},
					{"name": "scaler", "type": "scaling_loop", "status": "UP"}
				]
			}`))
		})

		Context("when the supervisor config is unreadable", func() {
			BeforeEach(func() {
				pinger.err = errors.New("gone")
			})

			It("is DOWN", func() {
				rec := get("/health/readiness")
				Expect(rec.Code).To(Equal(http.StatusServiceUnavailable))
				var body map[string]interface{}
				Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
				Expect(body["overall_status"]).To(Equal("DOWN"))
			})
		})

		Context("when the last iteration failed", func() {
			BeforeEach(func() {
				collector.ObserveIteration(healthendpoint.ResultReloadFailed)
			})

			It("is DOWN", func() {
				Expect(get("/health/readiness").Body.String()).To(ContainSubstring(`{"name":"scaler","type":"scaling_loop","status":"DOWN"}`))
			})
		})

		Context("when readiness is disabled", func() {
			BeforeEach(func() {
				conf.ReadinessCheckEnabled = false
			})

			It("falls through to the metrics handler", func() {
				Expect(get("/health/readiness").Body.String()).NotTo(ContainSubstring("overall_status"))
			})
		})
	})

	Describe("metrics", func() {
		It("serves prometheus metrics without auth", func() {
			rec := get("/metrics")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("qscaler_scaler_desired_processes"))
		})

		Context("with basic auth", func() {
			BeforeEach(func() {
				conf.BasicAuth = models.BasicAuth{Username: "user", Password: "pass"}
			})

			It("rejects missing credentials", func() {
				Expect(get("/metrics").Code).To(Equal(http.StatusUnauthorized))
			})

			It("rejects wrong credentials", func() {
				Expect(get("/metrics", "user", "wrong").Code).To(Equal(http.StatusUnauthorized))
			})

			It("accepts the configured credentials", func() {
				rec := get("/metrics", "user", "pass")
				Expect(rec.Code).To(Equal(http.StatusOK))
				Expect(rec.Body.String()).To(ContainSubstring("qscaler_scaler_cpu_usage_percent"))
			})

			It("keeps readiness unauthenticated", func() {
				Expect(get("/health/readiness").Code).To(Equal(http.StatusOK))
			})
		})
	})
})
