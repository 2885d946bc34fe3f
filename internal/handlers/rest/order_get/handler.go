package order_get

import (
	"net/http"

	"github.com/gorilla/mux"
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
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess := session.FromContext(r.Context())

	details, err := h.service.GetOrder(r.Context(), sess, id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromDetails(
		details.Order,
		details.Actions,
		details.NextStatus,
		details.NextPayment,
	))
}
