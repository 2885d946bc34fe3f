package order_put

import (
	"net/http"

	"github.com/gorilla/mux"
	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/orderform"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/internal/pkg/session"
	"ordertracker/internal/service/order"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отправляет в хранилище только поля, присутствующие в форме.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	r.Body = http.MaxBytesReader(w, r.Body, orderform.MaxMemory+orderform.MaxAttachmentSize)

	patch, err := orderform.ParsePatch(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	updated, err := h.service.UpdateOrder(r.Context(), session.FromContext(r.Context()), id, patch)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	if updated == nil {
		respond.Error(w, h.log, order.ErrRepository)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(*updated))
}
