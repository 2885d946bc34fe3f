package orders_search_get

import (
	"net/http"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/internal/service/query"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_search_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP проксирует поиск в удаленное хранилище: ?name=&number=&fromDate=&toDate=.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q, err := query.BuildSearch(
		params.Get("name"),
		params.Get("number"),
		params.Get("fromDate"),
		params.Get("toDate"),
	)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	orders, err := h.service.SearchOrders(r.Context(), q)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.NewOrderList(orders))
}
