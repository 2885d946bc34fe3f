package history

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"ordertracker/internal/entities"
	"ordertracker/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Insert не перезаписывает уже записанное событие.
func (r *Repository) Insert(ctx context.Context, event entities.LifecycleEvent) (bool, error) {
	m := FromDomain(event)

	query, args, err := qb.
		Insert("order_events").
		Columns("event_id", "order_id", "action", "from_value", "to_value", "actor", "occurred_at").
		Values(m.EventID, m.OrderID, m.Action, m.FromValue, m.ToValue, m.Actor, m.OccurredAt).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected history repository insert error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected history repository insert error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByOrderID(ctx context.Context, orderID string, limit uint64) ([]entities.LifecycleEvent, error) {
	query, args, err := qb.
		Select("event_id", "order_id", "action", "from_value", "to_value", "actor", "occurred_at").
		From("order_events").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("occurred_at ASC", "recorded_at ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]OrderEventDB, 0, 8)
	for rows.Next() {
		var m OrderEventDB
		err := rows.Scan(
			&m.EventID,
			&m.OrderID,
			&m.Action,
			&m.FromValue,
			&m.ToValue,
			&m.Actor,
			&m.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected history repository list error: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository list error: %w", err)
	}

	return ToDomainList(models), nil
}
