package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	trackingEventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "transport_service",
			Subsystem: "kafka_consumer",
			Name:      "tracking_events_processed_total",
			Help:      "Total number of successfully applied tracking events",
		},
	)

	trackingEventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "transport_service",
			Subsystem: "kafka_consumer",
			Name:      "tracking_events_failed_total",
			Help:      "Total number of tracking events that failed to apply",
		},
	)

	trackingEventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "transport_service",
			Subsystem: "kafka_consumer",
			Name:      "tracking_events_dlq_total",
			Help:      "Total number of tracking events written to DLQ",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		trackingEventsProcessed,
		trackingEventsFailed,
		trackingEventsDLQ,
	)
}
