// Package metrics holds the Prometheus collectors exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests served by the console API.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_http_requests_total",
			Help: "Total number of HTTP requests served by the console.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes console request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "Console HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// UpstreamRequestsTotal counts calls to the upstream REST backend.
	// status is "error" when no response was received.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_upstream_requests_total",
			Help: "Total number of calls made to the upstream backend.",
		},
		[]string{"method", "resource", "status"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_upstream_request_duration_seconds",
			Help:    "Upstream backend call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)

	// StaleRefreshesTotal counts screen refreshes discarded because a newer one started.
	StaleRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_stale_refreshes_total",
			Help: "Screen refreshes discarded because a newer refresh superseded them.",
		},
		[]string{"screen"},
	)

	// ActiveWorkspaces is the number of per-user workspaces held in memory.
	ActiveWorkspaces = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "backoffice_active_workspaces",
			Help: "Number of per-user screen workspaces currently cached.",
		},
	)
)
