package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// queriesTotal counts orchestrated reads by entity, operation and outcome
	queriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_queries_total",
			Help: "Total number of list and detail queries by outcome",
		},
		[]string{"entity", "operation", "outcome"},
	)

	// droppedConditionsTotal counts filter conditions that were skipped
	droppedConditionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_filter_conditions_dropped_total",
			Help: "Filter conditions that could not be parsed or applied",
		},
		[]string{"entity", "reason"},
	)

	deactivationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_expired_records_deactivated_total",
			Help: "Time-bounded records deactivated by the expiration sweeper",
		},
		[]string{"entity"},
	)

	directoryLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_directory_lookups_total",
			Help: "Batched identity lookups issued while enriching pages",
		},
		[]string{"kind"},
	)
)
