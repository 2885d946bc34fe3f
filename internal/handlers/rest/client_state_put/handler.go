package client_state_put

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"ordertracker/internal/entities"
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
	handlerLog := log.With(logger.NewField("handler", "client_state_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP обслуживает два маршрута: PUT /client/state/{key} с телом
// {"value": bool} и PUT /client/state с телом {"key": bool, ...}.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess := session.FromContext(r.Context())

	if key, ok := mux.Vars(r)["key"]; ok {
		h.setOne(w, r, sess.Username, entities.ClientStateKey(key))
		return
	}
	h.setMany(w, r, sess.Username)
}

func (h *Handler) setOne(w http.ResponseWriter, r *http.Request, username string, key entities.ClientStateKey) {
	var body dto.ClientStateValue
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Value == nil {
		respond.Error(w, h.log, fmt.Errorf("%w: expected {\"value\": bool}", respond.ErrBadRequest))
		return
	}

	entry, err := h.service.Set(r.Context(), username, key, *body.Value)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromClientStateEntry(*entry))
}

func (h *Handler) setMany(w http.ResponseWriter, r *http.Request, username string) {
	var body map[string]bool
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond.Error(w, h.log, fmt.Errorf("%w: expected {\"key\": bool}", respond.ErrBadRequest))
		return
	}

	values := make(map[entities.ClientStateKey]bool, len(body))
	for k, v := range body {
		values[entities.ClientStateKey(k)] = v
	}

	state, err := h.service.SetMany(r.Context(), username, values)
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.FromClientState(*state))
}
