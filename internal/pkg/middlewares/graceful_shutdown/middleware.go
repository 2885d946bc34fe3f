package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware отклоняет новые запросы, когда ongoingCtx отменен в рамках остановки.
// Retry-After подсказывает клиенту повторить запрос на другом поде.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-ongoingCtx.Done():
				if isShuttingDown.Load() {
					w.Header().Set("Content-Type", "application/json")
					w.Header().Set("Connection", "close")
					w.Header().Set("Retry-After", "1")
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte(`{"error":"service is shutting down"}`))
					return
				}
			default:
			}

			next.ServeHTTP(w, r)
		})
	}
}
