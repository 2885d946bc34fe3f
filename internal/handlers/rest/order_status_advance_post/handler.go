package order_status_advance_post

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
	handlerLog := log.With(logger.NewField("handler", "order_status_advance_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP выполняет следующий шаг жизненного цикла: Inquiry -> Confirm,
// затем Pending -> Running -> Done. Тело запроса не читается.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	updated, err := h.service.AdvanceStatus(r.Context(), session.FromContext(r.Context()), id)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromOrder(*updated))
}
