// Package metrics holds the Prometheus collectors of the aggregation engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Units of work whose failure is absorbed by the engine.
const (
	UnitCategoryWindow  = "category_window"
	UnitAuditQuery      = "audit_query"
	UnitRoleLookup      = "role_lookup"
	UnitSchemaHydration = "schema_hydration"
	UnitRecordLookup    = "record_lookup"
)

var (
	unitFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blame",
			Name:      "unit_failures_total",
			Help:      "Per-unit fetches that failed and were replaced by an empty contribution.",
		},
		[]string{"unit"},
	)

	aggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blame",
			Name:      "aggregations_total",
			Help:      "Aggregation runs by feed and outcome.",
		},
		[]string{"feed", "result"},
	)

	aggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blame",
			Name:      "aggregation_duration_seconds",
			Help:      "Wall time of one aggregation run.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"feed"},
	)
)

// UnitFailed counts one absorbed failure of the given unit.
func UnitFailed(unit string) {
	unitFailuresTotal.WithLabelValues(unit).Inc()
}

// ObserveAggregation records the outcome and duration of one run.
func ObserveAggregation(feed string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	aggregationsTotal.WithLabelValues(feed, result).Inc()
	aggregationDuration.WithLabelValues(feed).Observe(d.Seconds())
}
