package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает время обработки запроса, включая походы
// в удаленное хранилище заказов. Нулевое значение отключает лимит.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
