package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Turns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "turns_total", Help: "Dialogue turns processed, by step and outcome."},
		[]string{"step", "outcome"}, // outcome: advanced|retry|reset|completed|error
	)
	Bookings = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "concierge", Name: "bookings_total", Help: "Reservations committed to the sink."},
	)
	ExtractionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "concierge", Name: "extraction_failures_total", Help: "Field extractions that yielded no value."},
		[]string{"field"},
	)
	SessionsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "concierge", Name: "sessions_created_total", Help: "New dialogue sessions minted."},
	)
)

// InitRegistry registers all collectors on a fresh registry.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(Turns, Bookings, ExtractionFailures, SessionsCreated)
	return reg
}

// MetricsHandler exposes the registry in Prometheus text format.
func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// ObserveTurn records one processed dialogue turn.
func ObserveTurn(step, outcome string) {
	Turns.WithLabelValues(step, outcome).Inc()
}

// ObserveExtractionFailure records an extractor returning no value.
func ObserveExtractionFailure(field string) {
	ExtractionFailures.WithLabelValues(field).Inc()
}
