package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "orders_created_total",
			Help:      "Total number of orders placed",
		},
	)

	statusUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "orders",
			Name:      "order_status_updates_total",
			Help:      "Total number of order status changes by new status",
		},
		[]string{"status"},
	)

	salesRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "sales",
			Name:      "sales_recorded_total",
			Help:      "Total number of sales recorded on delivery",
		},
	)

	storeWriteErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "store",
			Name:      "store_write_errors_total",
			Help:      "Total number of failed collection writes",
		},
		[]string{"collection"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersCreated,
		statusUpdates,
		salesRecorded,
		storeWriteErrors,
	)
}
