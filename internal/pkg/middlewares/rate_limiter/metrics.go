package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RateLimitExceededTotal считает ответы 429 по шаблону маршрута,
// а не по сырому пути, чтобы id заказов не раздували кардинальность.
var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "ordertracker",
		Subsystem: "http",
		Name:      "rate_limit_exceeded_total",
		Help:      "Requests rejected by the rate limiter",
	},
	[]string{"method", "route"},
)
