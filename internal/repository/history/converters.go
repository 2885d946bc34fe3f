package history

import (
	"github.com/samber/lo"
	"ordertracker/internal/entities"
)

func FromDomain(e entities.LifecycleEvent) OrderEventDB {
	return OrderEventDB{
		EventID:    e.EventID,
		OrderID:    e.OrderID,
		Action:     e.Action.String(),
		FromValue:  e.From,
		ToValue:    e.To,
		Actor:      e.Actor,
		OccurredAt: e.OccurredAt,
	}
}

func ToDomain(m *OrderEventDB) *entities.LifecycleEvent {
	if m == nil {
		return nil
	}

	return &entities.LifecycleEvent{
		EventID:    m.EventID,
		OrderID:    m.OrderID,
		Action:     entities.LifecycleAction(m.Action),
		From:       m.FromValue,
		To:         m.ToValue,
		Actor:      m.Actor,
		OccurredAt: m.OccurredAt.UTC(),
	}
}

func ToDomainList(models []OrderEventDB) []entities.LifecycleEvent {
	if len(models) == 0 {
		return []entities.LifecycleEvent{}
	}

	return lo.Map(models, func(m OrderEventDB, _ int) entities.LifecycleEvent {
		return *ToDomain(&m)
	})
}
