package quote

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quotesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "transport_service",
		Subsystem: "quote_engine",
		Name:      "quotes_computed_total",
		Help:      "Total number of per-provider quotes computed.",
	})

	conversionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "transport_service",
		Subsystem: "quote_engine",
		Name:      "conversion_fallbacks_total",
		Help:      "Quotes returned in the provider's rate currency after a failed conversion.",
	})
)
