package auth_logout_post

import (
	"net/http"

	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "auth_logout_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP сбрасывает флаг authenticated. Сам JWT живет до истечения TTL,
// клиент просто перестает его отправлять.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if err := h.service.Logout(r.Context(), sess); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	h.log.Info("logged out", logger.NewField("username", sess.Username))
	w.WriteHeader(http.StatusNoContent)
}
