package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_lifecycle_transitions_total",
			Help: "Total number of persisted order lifecycle transitions",
		},
		[]string{"action", "role"},
	)

	OrderMutationsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_mutations_failed_total",
			Help: "Total number of order mutations rejected by the remote store",
		},
		[]string{"operation"},
	)
)
