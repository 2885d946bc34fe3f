package order_post

import (
	"net/http"

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
	handlerLog := log.With(logger.NewField("handler", "order_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, orderform.MaxMemory+orderform.MaxAttachmentSize)

	draft, attachment, err := orderform.ParseDraft(r)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	created, err := h.service.CreateOrder(r.Context(), session.FromContext(r.Context()), draft, attachment)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	if created == nil {
		respond.Error(w, h.log, order.ErrRepository)
		return
	}

	h.log.Info("order created", logger.NewField("order_id", created.ID))
	respond.JSON(w, h.log, http.StatusCreated, dto.FromOrder(*created))
}
