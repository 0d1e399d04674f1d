package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Enrollments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_enrollments_total",
			Help: "Total number of successful signups per activity",
		},
		[]string{"activity"},
	)

	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_withdrawals_total",
			Help: "Total number of successful unregistrations per activity",
		},
		[]string{"activity"},
	)

	Rejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_registry_rejections_total",
			Help: "Total number of rejected signup or unregister calls",
		},
		[]string{"operation", "reason"},
	)

	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_participants",
			Help: "Current roster size per activity",
		},
		[]string{"activity"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
