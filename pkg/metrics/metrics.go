package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP request metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folyo_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "folyo_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Production accounting metrics.
var (
	// AutoConsumptionSkipped counts spool/gas auto-consumption postings that
	// were skipped because the auxiliary material was missing or short on
	// stock. The record creation itself still succeeds; this counter is the
	// observable trace of that policy.
	AutoConsumptionSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "folyo_auto_consumption_skipped_total",
			Help: "Auto-consumption postings skipped during manufacturing record creation",
		},
		[]string{"material", "reason"},
	)
)
