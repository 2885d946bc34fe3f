package rate_limiter

import "ordertracker/pkg/logger"

// Limiter - token bucket или любая другая стратегия допуска запроса.
type Limiter interface {
	Allow() bool
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
