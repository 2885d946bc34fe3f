//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=clientstate_test
package clientstate

import (
	"context"

	"ordertracker/internal/entities"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) ([]entities.ClientStateEntry, error)
	Upsert(ctx context.Context, entry entities.ClientStateEntry) (*entities.ClientStateEntry, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
