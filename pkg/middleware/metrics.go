package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the per-endpoint request collectors of one HTTP module
type Metrics struct {
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	requestSummary *prometheus.SummaryVec
	mutations      *prometheus.CounterVec
}

// NewMetrics creates the collectors for a module and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: namespace + "_requests_total",
				Help: "Total number of requests to " + namespace,
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    namespace + "_request_duration_seconds",
				Help:    "Duration of " + namespace + " requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: namespace + "_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		mutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: namespace + "_mutations_total",
				Help: "Confirmed state changes performed by " + namespace,
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.requestCounter, m.requestLatency, m.requestSummary, m.mutations)
	}
	return m
}

// Wrap records metrics for the handler under the given endpoint label
func (m *Metrics) Wrap(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

// Mutation counts one confirmed state change
func (m *Metrics) Mutation(operation string) {
	m.mutations.WithLabelValues(operation).Inc()
}
