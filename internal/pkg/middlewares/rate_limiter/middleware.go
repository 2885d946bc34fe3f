package rate_limiter

import (
	"net/http"
	"strconv"

	"ordertracker/internal/pkg/middlewares/metrics"
	"ordertracker/pkg/logger"
)

// Middleware отклоняет запросы сверх лимита с 429. qps попадает только
// в заголовок X-RateLimit-Limit, сам лимит задает rlimiter.
func Middleware(log handlerLogger, qps int, rlimiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rlimiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()
			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(qps))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte(`{"error":"rate limit exceeded, try again later"}`)); err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("failed to write rate limit response")
			}
		})
	}
}
