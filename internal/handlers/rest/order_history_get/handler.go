package order_history_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_history_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает журнал переходов заказа. Для удаленного заказа журнал
// сохраняется, поэтому существование заказа здесь не проверяется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	events, err := h.service.List(r.Context(), id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromLifecycleEvents(id, events))
}
