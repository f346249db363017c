// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TenantsRegisteredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_tenants_registered_total",
		Help: "Total number of registered tenant accounts.",
	})

	CustomersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_customers_created_total",
		Help: "Total number of customers successfully created.",
	})

	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shiptrack_status_transitions_total",
		Help: "Total number of timeline entries appended, by target status.",
	},
		[]string{"status"},
	)

	QuotaRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shiptrack_quota_rejections_total",
		Help: "Total number of creations refused by a plan ceiling.",
	},
		[]string{"resource", "plan"},
	)

	TrackingCodeCollisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_tracking_code_collisions_total",
		Help: "Total number of generated tracking codes that were already taken.",
	})

	TrackingLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shiptrack_tracking_lookups_total",
		Help: "Total number of public tracking lookups, by scope and outcome.",
	},
		[]string{"scope", "outcome"},
	)

	DBPoolConnections = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "shiptrack_db_pool_connections",
		Help: "Connections in the PostgreSQL pool, by state.",
	},
		[]string{"state"},
	)

	DBPoolWaitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_db_pool_waits_total",
		Help: "Total number of queries that waited for a free connection.",
	})

	DBPoolWaitSecondsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_db_pool_wait_seconds_total",
		Help: "Total time spent waiting for a free connection.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shiptrack_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"method", "route", "code"},
	)
)
