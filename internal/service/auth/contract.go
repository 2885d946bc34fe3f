//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/session"
)

type TokenIssuer interface {
	Issue(username string, role entities.Role) (string, session.Session, error)
}

type ClientStateService interface {
	Set(ctx context.Context, username string, key entities.ClientStateKey, value bool) (*entities.ClientStateEntry, error)
}
