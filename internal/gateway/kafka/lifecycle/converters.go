package lifecycle

import "ordertracker/internal/entities"

func fromDomain(e entities.LifecycleEvent) Message {
	return Message{
		EventID:    e.EventID,
		OrderID:    e.OrderID,
		Action:     e.Action.String(),
		From:       e.From,
		To:         e.To,
		Actor:      e.Actor,
		OccurredAt: e.OccurredAt,
	}
}

func ToDomain(m Message) entities.LifecycleEvent {
	return entities.LifecycleEvent{
		EventID:    m.EventID,
		OrderID:    m.OrderID,
		Action:     entities.LifecycleAction(m.Action),
		From:       m.From,
		To:         m.To,
		Actor:      m.Actor,
		OccurredAt: m.OccurredAt,
	}
}
