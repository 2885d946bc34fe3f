package analytics_get

import (
	"net/http"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "analytics_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP строит отчет по текущей локальной коллекции, без похода в хранилище.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, h.log, http.StatusOK, dto.FromReport(h.service.Analytics(r.Context())))
}
