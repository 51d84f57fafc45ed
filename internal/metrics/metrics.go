// Package metrics exposes Prometheus instrumentation for the HTTP layer
// and order outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinehall_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "path", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cinehall_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	OrdersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinehall_orders_total",
		Help: "Order state machine outcomes.",
	}, []string{"outcome"})
)
