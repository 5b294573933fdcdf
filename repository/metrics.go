package repository

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "sql_query_duration_seconds",
	Help: "Duration of sql queries in seconds",
}, []string{"query"})

func timeQuery(name string, query func() error) error {
	start := time.Now()
	err := query()
	queryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	return err
}
