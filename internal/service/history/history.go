package history

import (
	"context"
	"fmt"

	"ordertracker/internal/entities"
	"ordertracker/pkg/logger"
)

const defaultListLimit = 100

// Service ведет журнал переходов жизненного цикла заказов.
type Service struct {
	log        logger.Logger
	repository Repository
}

func New(log logger.Logger, repository Repository) *Service {
	return &Service{
		log:        log.With(logger.NewField("service", "history")),
		repository: repository,
	}
}

// Record идемпотентен по EventID: повторная доставка того же события не ошибка.
func (s *Service) Record(ctx context.Context, event entities.LifecycleEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	inserted, err := s.repository.Insert(ctx, event)
	if err != nil {
		return fmt.Errorf("record lifecycle event %s: %w", event.EventID, err)
	}
	if !inserted {
		s.log.Info("duplicate lifecycle event skipped",
			logger.NewField("event_id", event.EventID),
			logger.NewField("order_id", event.OrderID),
		)
	}
	return nil
}

// List отдает переходы заказа от старых к новым.
func (s *Service) List(ctx context.Context, orderID string) ([]entities.LifecycleEvent, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	events, err := s.repository.ListByOrderID(ctx, orderID, defaultListLimit)
	if err != nil {
		return nil, fmt.Errorf("list lifecycle events of %s: %w", orderID, err)
	}
	return events, nil
}
