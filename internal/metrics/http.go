package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	requestsCollectorName = "http_requests_total"
	latencyCollectorName  = "http_request_duration_seconds"
	pathLabel             = "path"
)

// HTTPMetrics counts requests and latency partitioned by status code, method and route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers the HTTP collectors.
func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      requestsCollectorName,
				Help:      "Number of HTTP requests partitioned by status code, method and route.",
			},
			[]string{"code", "method", pathLabel},
		),
		latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      latencyCollectorName,
				Help:      "Time spent on the request partitioned by status code, method and route.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"code", "method", pathLabel},
		),
	}

	for _, c := range []prometheus.Collector{m.requests, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Instrument wraps the handler registered for route.
// The route is a fixed label so unknown paths cannot grow label cardinality.
func (m *HTTPMetrics) Instrument(route string, next http.Handler) http.Handler {
	labels := prometheus.Labels{pathLabel: route}

	return promhttp.InstrumentHandlerCounter(
		m.requests.MustCurryWith(labels),
		promhttp.InstrumentHandlerDuration(m.latency.MustCurryWith(labels), next),
	)
}

// Handler exposes the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
