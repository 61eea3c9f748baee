// Package metrics exposes the service's Prometheus counters. main mounts
// promhttp at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lodelfer_bookings_created_total",
		Help: "Appointments accepted and handed to the store.",
	})

	AgendaRenders = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lodelfer_agenda_renders_total",
		Help: "Successful agenda listings.",
	})

	StoreUnavailable = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lodelfer_store_unavailable_total",
		Help: "Operations that failed because the backing store was unreachable.",
	})

	WriteConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lodelfer_store_write_conflicts_total",
		Help: "Sheet overwrites abandoned after exhausting optimistic retries.",
	})
)
