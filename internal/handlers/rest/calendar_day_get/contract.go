//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=calendar_day_get_test
package calendar_day_get

import (
	"context"
	"time"

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
	OrdersOnDate(ctx context.Context, day time.Time) []entities.Order
	// Location - календарная зона, в которой разбирается дата из пути.
	Location() *time.Location
}
