package order_delete

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
	handlerLog := log.With(logger.NewField("handler", "order_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sess := session.FromContext(r.Context())

	if err := h.service.DeleteOrder(r.Context(), sess, id); err != nil {
		respond.Error(w, h.log, err)
		return
	}

	h.log.Info("order deleted",
		logger.NewField("order_id", id),
		logger.NewField("username", sess.Username),
	)
	respond.JSON(w, h.log, http.StatusOK, dto.DeleteResponse{ID: id, Deleted: true})
}
