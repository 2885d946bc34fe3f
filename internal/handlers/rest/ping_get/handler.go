package ping_get

import (
	"net/http"
	"time"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/pkg/logger"
)

// Handler отвечает pong и серверным временем в UTC: клиент сверяет
// по нему часы перед расчетом сроков.
type Handler struct {
	log   handlerLogger
	clock Clock
}

func New(log handlerLogger, clock Clock) *Handler {
	handlerLog := log.With(logger.NewField("handler", "ping_get"))

	return &Handler{
		log:   handlerLog,
		clock: clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.PingResponse{
		Message: "pong",
		Time:    h.clock.Now().UTC().Format(time.RFC3339),
	})
}
