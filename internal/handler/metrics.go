package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invoice_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_ingested_total",
			Help:      "Total number of successfully ingested orders",
		},
	)

	ordersFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invoice_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_failed_total",
			Help:      "Total number of failed order ingest attempts",
		},
	)

	ordersDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "invoice_service",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of order messages written to DLQ",
		},
	)
)

var invoiceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "invoice_service",
		Subsystem: "http",
		Name:      "invoice_requests_total",
		Help:      "Total number of invoice requests by outcome (success, warning, not_found, error)",
	},
	[]string{"outcome"},
)
