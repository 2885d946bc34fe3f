//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_state_put_test
package client_state_put

import (
	"context"

	"ordertracker/internal/entities"
	"ordertracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Set(ctx context.Context, username string, key entities.ClientStateKey, value bool) (*entities.ClientStateEntry, error)
	SetMany(ctx context.Context, username string, values map[entities.ClientStateKey]bool) (*entities.ClientState, error)
}
