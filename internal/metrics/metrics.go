package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoansRequestedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gil_loans_requested_total",
		Help: "Total number of loan requests accepted.",
	})

	LoansActivatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gil_loans_activated_total",
		Help: "Total number of loans handed over to the requester.",
	})

	LoansReturnedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gil_loans_returned_total",
		Help: "Total number of loans returned.",
	})

	LoanConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gil_loan_conflicts_total",
		Help: "Total number of operations rejected by the single-active-loan guard.",
	})

	AlertsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gil_alerts_created_total",
		Help: "Total number of alerts raised, by kind.",
	},
		[]string{"kind"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gil_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	SchedulerPassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gil_scheduler_pass_duration_seconds",
		Help:    "Duration of maintenance scheduler passes.",
		Buckets: prometheus.DefBuckets,
	})

	EquipmentCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gil_equipment_cache_items",
		Help: "Current number of items in the equipment availability cache.",
	})
)
