package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(storageDuration, storageErrorsTotal) }

var (
	storageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_query_duration_seconds",
			Help:    "Latency of storage queries per table and statement kind.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table", "op"},
	)

	storageErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_errors_total",
			Help: "Storage queries that returned an error, per table and statement kind.",
		},
		[]string{"table", "op"},
	)
)

// ObserveStorage registra la latencia de una consulta y, si failed, cuenta el error.
func ObserveStorage(table, op string, start time.Time, failed bool) {
	storageDuration.WithLabelValues(norm(table), norm(op)).Observe(time.Since(start).Seconds())
	if failed {
		storageErrorsTotal.WithLabelValues(norm(table), norm(op)).Inc()
	}
}
