package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "re_deals"

//nolint:gochecknoglobals
var (
	ProjectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projections_total",
		Help:      "Number of pro-forma projections by deal kind and computability.",
	}, []string{"kind", "computable"})

	IRRUndefinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "irr_undefined_total",
		Help:      "Exit scenarios whose IRR did not converge.",
	})

	SensitivityDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "sensitivity_grid_duration_seconds",
		Help:      "Time to evaluate a sensitivity grid.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"metric"})

	AnalysisCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analysis_cache_total",
		Help:      "Saved deal analysis lookups by result: local, shared or miss.",
	}, []string{"result"})

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Deal published notifications by outcome.",
	}, []string{"outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "API request latency by method, route pattern and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	TasksFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_failed_total",
		Help:      "Background tasks that returned an error, by task type.",
	}, []string{"type"})
)
