//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"ordertracker/internal/pkg/session"
	"ordertracker/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type TokenParser interface {
	Parse(token string) (session.Session, error)
}
