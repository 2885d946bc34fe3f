package calendar_month_get

import (
	"fmt"
	"net/http"
	"strconv"
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
	handlerLog := log.With(logger.NewField("handler", "calendar_month_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil || year < 1 || year > 9999 {
		respond.Error(w, h.log, fmt.Errorf("%w: year %q", respond.ErrBadRequest, vars["year"]))
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil || month < 1 || month > 12 {
		respond.Error(w, h.log, fmt.Errorf("%w: month %q", respond.ErrBadRequest, vars["month"]))
		return
	}

	cells := h.service.CalendarMonth(r.Context(), year, time.Month(month))

	respond.JSON(w, h.log, http.StatusOK, dto.FromCalendar(year, time.Month(month), cells))
}
