package auth_login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/handlers/rest/respond"
	"ordertracker/internal/service/auth"
	"ordertracker/pkg/logger"
)

const tokenType = "Bearer"

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "auth_login_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.log, respond.ErrBadRequest)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.log.Warn("login rejected", logger.NewField("username", req.Username))
		}
		respond.Error(w, h.log, err)
		return
	}

	respond.JSON(w, h.log, http.StatusOK, dto.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   tokenType,
		Username:    token.Session.Username,
		Role:        token.Session.Role.String(),
	})
}
