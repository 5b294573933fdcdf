package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventsCreatedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "sportcal_events_created_total",
		Help: "Number of events created",
	},
)

var EventsDeletedCounter = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "sportcal_events_deleted_total",
		Help: "Number of events deleted",
	},
)
