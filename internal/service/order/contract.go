//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"ordertracker/internal/entities"
)

// Gateway - удаленное хранилище заказов. Search с пустым запросом отдает всю коллекцию.
type Gateway interface {
	Create(ctx context.Context, payload entities.OrderCreate, attachment *entities.Upload) (*entities.Order, error)
	Update(ctx context.Context, id string, modify entities.OrderModify) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query entities.SearchQuery) ([]entities.Order, error)
}

// Collection - локальная копия коллекции, из которой строятся представления.
type Collection interface {
	Orders() []entities.Order
	Replace(orders []entities.Order)
	Upsert(order entities.Order)
	Remove(id string)
}

type EventPublisher interface {
	PublishLifecycle(ctx context.Context, event entities.LifecycleEvent) error
}

type Clock interface {
	Now() time.Time
}
