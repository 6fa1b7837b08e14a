package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	purchasesProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "postomat_service",
			Subsystem: "kafka_consumer",
			Name:      "purchases_processed_total",
			Help:      "Total number of successfully ingested purchases",
		},
	)

	purchasesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "postomat_service",
			Subsystem: "kafka_consumer",
			Name:      "purchases_failed_total",
			Help:      "Total number of failed purchase ingestion attempts",
		},
	)

	purchasesDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "postomat_service",
			Subsystem: "kafka_consumer",
			Name:      "purchases_dlq_total",
			Help:      "Total number of purchases written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "postomat_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	purchaseProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "postomat_service",
			Subsystem: "kafka_consumer",
			Name:      "purchase_processing_duration_seconds",
			Help:      "Histogram of purchase ingestion durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

var (
	// outcome: "ok" или код ошибки из ответа
	transitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postomat_service",
			Subsystem: "handoff",
			Name:      "transitions_total",
			Help:      "Total number of hand-off operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	transitionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "postomat_service",
			Subsystem: "handoff",
			Name:      "transition_duration_seconds",
			Help:      "Histogram of hand-off operation durations",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	transitionsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "postomat_service",
			Subsystem: "handoff",
			Name:      "transitions_in_progress",
			Help:      "Number of hand-off operations currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		purchasesProcessed,
		purchasesFailed,
		purchasesDLQ,
		commitErrors,
		purchaseProcessingDuration,

		transitionsTotal,
		transitionDuration,
		transitionsInProgress,
	)
}
