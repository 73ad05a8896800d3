// Package metrics defines the Prometheus instrumentation for vintedwatch.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vw"

// Metrics holds all Prometheus collectors for the application.
type Metrics struct {
	// Sweep and check metrics.
	SweepDuration     prometheus.Histogram
	SweepsTotal       prometheus.Counter
	ChecksTotal       prometheus.Counter
	CheckErrorsTotal  prometheus.Counter
	ListingsSeenTotal prometheus.Counter
	ListingsNewTotal  prometheus.Counter

	// Notification delivery metrics.
	NotificationsSentTotal   prometheus.Counter
	NotificationsFailedTotal prometheus.Counter

	// Catalog source metrics.
	CatalogRequestsTotal *prometheus.CounterVec
	CatalogDailyUsage    prometheus.Gauge

	// Scheduler metrics.
	SchedulerNextRun *prometheus.GaugeVec

	// HTTP server metrics.
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics with the given registerer.
// Pass prometheus.DefaultRegisterer for production use or a fresh
// registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of full sweeps over all active watches.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
		}),
		SweepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Total number of sweeps executed.",
		}),
		ChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Total number of individual watch checks.",
		}),
		CheckErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "check_errors_total",
			Help:      "Total number of watch checks that ended with an error.",
		}),
		ListingsSeenTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_seen_total",
			Help:      "Total number of listings returned by catalog searches.",
		}),
		ListingsNewTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listings_new_total",
			Help:      "Total number of listings notified for the first time.",
		}),
		NotificationsSentTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_sent_total",
			Help:      "Total number of notifications delivered successfully.",
		}),
		NotificationsFailedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_failed_total",
			Help:      "Total number of notification deliveries that failed.",
		}),
		CatalogRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_requests_total",
			Help:      "Total catalog API requests by outcome.",
		}, []string{"outcome"}),
		CatalogDailyUsage: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_daily_usage",
			Help:      "Catalog API calls counted against the rolling daily quota.",
		}),
		SchedulerNextRun: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduler_next_run_timestamp_seconds",
			Help:      "Unix timestamp of the next scheduled run per job.",
		}, []string{"job"}),
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
