package lifecycle

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lifecycle_events_published_total",
		Help: "Total number of lifecycle events sent to Kafka",
	},
	[]string{"result"},
)
