package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blog", Name: "http_requests_total", Help: "Number of HTTP requests by method, route and status."},
		[]string{"method", "route", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "blog", Name: "http_request_duration_seconds", Help: "HTTP request latency by method and route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	BlogOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "blog", Name: "operations_total", Help: "Blog operations by kind and outcome."},
		[]string{"operation", "outcome"},
	)
	StoreOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "blog", Name: "store_operation_duration_seconds", Help: "Document store operation latency.", Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1}},
		[]string{"operation", "collection"},
	)
	StoreConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "blog", Name: "store_connected", Help: "1 while the document store is reachable, 0 otherwise."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPRequestDuration)
	reg.MustRegister(BlogOperations)
	reg.MustRegister(StoreOperationDuration)
	reg.MustRegister(StoreConnected)
}

// ObserveStoreOperation starts a timer; call the returned func when the operation ends.
func ObserveStoreOperation(operation, collection string) func() {
	timer := prometheus.NewTimer(StoreOperationDuration.WithLabelValues(operation, collection))
	return func() { timer.ObserveDuration() }
}

// CountOperation records one blog operation with its outcome (ok, not_found, invalid, error).
func CountOperation(operation, outcome string) {
	BlogOperations.WithLabelValues(operation, outcome).Inc()
}
