package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	intakeProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "orders_processed_total",
			Help:      "Total number of partner orders created from the intake topic",
		},
	)

	intakeFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "orders_failed_total",
			Help:      "Total number of intake messages that did not become an order",
		},
	)

	intakeDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "orders_dlq_total",
			Help:      "Total number of intake messages written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	intakeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of intake message processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	intakeInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "storefront",
			Subsystem: "intake",
			Name:      "orders_in_progress",
			Help:      "Number of intake messages currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		intakeProcessed,
		intakeFailed,
		intakeDLQ,
		commitErrors,
		intakeDuration,
		intakeInProgress,
	)
}
