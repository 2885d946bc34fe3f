package auth

import (
	"net/http"
	"strings"

	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware требует валидный Bearer-токен и кладет сессию в контекст запроса.
// Проверка роли остается за сервисами: здесь только аутентификация.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w, log, r, "missing bearer token")
				return
			}

			sess, err := parser.Parse(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Warn("rejected session token")
				unauthorized(w, log, r, "invalid session token")
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
		})
	}
}

func unauthorized(w http.ResponseWriter, log handlerLogger, r *http.Request, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="ordertracker"`)
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"error":"` + reason + `"}`)); err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("path", r.URL.Path),
		).Error("failed to write unauthorized response")
	}
}
