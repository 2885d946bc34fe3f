//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_advance_post_test
package order_status_advance_post

import (
	"context"

	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AdvanceStatus(ctx context.Context, sess session.Session, id string) (*entities.Order, error)
}
