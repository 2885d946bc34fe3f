package calendar_day_get

import (
	"fmt"
	"net/http"
	"time"

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
	handlerLog := log.With(logger.NewField("handler", "calendar_day_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP - заказы, у которых на дату {date} (YYYY-MM-DD) приходится
// добавление или доставка. День считается в календарной зоне сервиса.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	day, err := time.ParseInLocation(time.DateOnly, raw, h.service.Location())
	if err != nil {
		respond.Error(w, h.log, fmt.Errorf("%w: date %q", respond.ErrBadRequest, raw))
		return
	}

	orders := h.service.OrdersOnDate(r.Context(), day)

	respond.JSON(w, h.log, http.StatusOK, dto.CalendarDay{
		Date:   day.Format(time.DateOnly),
		Orders: dto.FromOrders(orders),
	})
}
