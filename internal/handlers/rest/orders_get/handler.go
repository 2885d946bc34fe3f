package orders_get

import (
	"net/http"

	"ordertracker/internal/entities"
	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP фильтрует локальную коллекцию: ?q=&status=&type=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	filter := entities.OrderFilter{
		Text:   params.Get("q"),
		Status: params.Get("status"),
		Type:   params.Get("type"),
	}

	orders := h.service.ListOrders(r.Context(), filter)

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrderList(orders))
}
