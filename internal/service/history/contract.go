//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=history_test
package history

import (
	"context"

	"ordertracker/internal/entities"
)

type Repository interface {
	// Insert возвращает false, если событие с таким EventID уже записано.
	Insert(ctx context.Context, event entities.LifecycleEvent) (bool, error)
	ListByOrderID(ctx context.Context, orderID string, limit uint64) ([]entities.LifecycleEvent, error)
}
