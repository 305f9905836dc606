package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// RouteDecisions counts optimization runs by recommended strategy.
	RouteDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_decisions_total", Help: "Route optimizations by recommended strategy."},
		[]string{"recommended"},
	)
	// GeometryFetches counts directions-service leg fetches by outcome.
	GeometryFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "geometry_fetches_total", Help: "Leg geometry fetches by outcome (ok, fallback, stale)."},
		[]string{"outcome"},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(RouteDecisions)
		Registry.MustRegister(GeometryFetches)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
