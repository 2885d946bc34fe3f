// Package respond пишет JSON-ответы и переводит ошибки сервисов в HTTP-коды.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ordertracker/internal/handlers/rest/dto"
	"ordertracker/internal/service/auth"
	"ordertracker/internal/service/clientstate"
	"ordertracker/internal/service/history"
	"ordertracker/internal/service/order"
	"ordertracker/internal/service/query"
	"ordertracker/pkg/logger"
)

// ErrBadRequest - тело или параметры запроса не разобрались.
var ErrBadRequest = errors.New("malformed request")

type Logger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

func Error(w http.ResponseWriter, log Logger, err error) {
	status := StatusFor(err)

	body := dto.ErrorResponse{Error: err.Error()}
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("error", err),
			logger.NewField("status", status),
		)
		body.Error = http.StatusText(status)
	}

	var verr *order.ValidationError
	if errors.As(err, &verr) {
		body.Error = order.ErrValidation.Error()
		body.Fields = verr.Fields()
	}

	JSON(w, log, status, body)
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrValidation),
		errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrEmptyModify),
		errors.Is(err, query.ErrInvalidSearchDate),
		errors.Is(err, history.ErrInvalidOrderID),
		errors.Is(err, clientstate.ErrUnknownKey),
		errors.Is(err, clientstate.ErrInvalidUsername),
		errors.Is(err, clientstate.ErrEmptyUpdate),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrUnauthenticated),
		errors.Is(err, auth.ErrUnauthenticated),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrTransitionUnavailable):
		return http.StatusConflict
	case errors.Is(err, order.ErrRepository):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
