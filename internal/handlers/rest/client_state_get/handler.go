package client_state_get

import (
	"net/http"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "client_state_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	state, err := h.service.Get(r.Context(), sess.Username)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromClientState(*state))
}
