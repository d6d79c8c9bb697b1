package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SwapsTotal counts resolved swap requests by outcome (success, rejected, error)
	SwapsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_swaps_total",
			Help: "Total number of swap requests by outcome",
		},
		[]string{"status"},
	)

	// SwapRejections counts rejected swaps by reason
	SwapRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_swap_rejections_total",
			Help: "Total number of rejected swaps by reason",
		},
		[]string{"reason"},
	)

	// SwapDuration tracks end to end swap processing time
	SwapDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "navette_swap_duration_seconds",
			Help:    "Swap processing duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120, 300},
		},
		[]string{"status"},
	)

	// ConfirmationWait tracks time spent waiting for source confirmations
	ConfirmationWait = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "navette_confirmation_wait_seconds",
			Help:    "Time spent waiting for source transaction confirmations",
			Buckets: []float64{0, 1, 2, 5, 10, 30, 60, 300},
		},
	)

	// TransactionsSent counts destination transactions by status
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_transactions_sent_total",
			Help: "Total number of destination transactions sent",
		},
		[]string{"chain", "status"},
	)

	// EventsDetected counts token events seen by the deposit watcher
	EventsDetected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_events_detected_total",
			Help: "Total number of token events detected",
		},
		[]string{"chain", "event_type"},
	)

	// WatcherReconnects counts deposit watcher resubscriptions
	WatcherReconnects = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_watcher_reconnects_total",
			Help: "Total number of deposit watcher reconnect attempts",
		},
		[]string{"chain"},
	)

	// LastProcessedBlock tracks the last block seen by the deposit watcher
	LastProcessedBlock = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "navette_last_processed_block",
			Help: "Last processed block number by chain",
		},
		[]string{"chain"},
	)

	// AssetBalance tracks the operator balance of each tracked asset
	AssetBalance = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "navette_asset_balance",
			Help: "Operator balance by network and ticker",
		},
		[]string{"network", "ticker"},
	)

	// UnresolvedExecutions tracks executions awaiting manual resolution
	UnresolvedExecutions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "navette_unresolved_executions",
			Help: "Number of destination executions left unresolved",
		},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "navette_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
