//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

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
	ListOrders(ctx context.Context, filter entities.OrderFilter) []entities.Order
}
