//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dashboard_get_test
package dashboard_get

import (
	"context"

	"ordertracker/internal/service/analytics"
	"ordertracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Dashboard(ctx context.Context) analytics.Dashboard
}
