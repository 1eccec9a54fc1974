// Package metrics expone los contadores Prometheus del servicio.
// Se registran en el registry por defecto y se sirven en /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration latencia HTTP por método, ruta y status.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coldstrg_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// MovementsAppended eventos anexados al libro, por tipo.
	MovementsAppended = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coldstrg_movements_appended_total",
			Help: "Total number of movement events appended to the ledger",
		},
		[]string{"type"},
	)

	// ShiftsCommitted lotes de traslado comprometidos.
	ShiftsCommitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coldstrg_shifts_committed_total",
			Help: "Total number of shift batches committed",
		},
	)

	// CapacityRejections escrituras rechazadas por el guardián de capacidad.
	CapacityRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coldstrg_capacity_rejections_total",
			Help: "Total number of writes rejected by the capacity guard",
		},
	)
)
