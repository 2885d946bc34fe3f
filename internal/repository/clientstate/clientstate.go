package clientstate

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"ordertracker/internal/entities"
	"ordertracker/internal/repository"
	service "ordertracker/internal/service/clientstate"
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

func (r *Repository) GetByUsername(ctx context.Context, username string) ([]entities.ClientStateEntry, error) {
	query, args, err := qb.
		Select("username", "key", "value", "updated_at").
		From("client_state").
		Where(sq.Eq{"username": username}).
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client state repository get error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected client state repository get error: %w", err)
	}
	defer rows.Close()

	models := make([]ClientStateDB, 0, len(entities.ClientStateKeys))
	for rows.Next() {
		var m ClientStateDB
		if err := rows.Scan(&m.Username, &m.Key, &m.Value, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("unexpected client state repository get error: %w", err)
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected client state repository get error: %w", err)
	}

	return ToDomainList(models), nil
}

func (r *Repository) Upsert(ctx context.Context, entry entities.ClientStateEntry) (*entities.ClientStateEntry, error) {
	query, args, err := qb.
		Insert("client_state").
		Columns("username", "key", "value", "updated_at").
		Values(entry.Username, entry.Key.String(), entry.Value, sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (username, key) DO UPDATE
			SET value = EXCLUDED.value, updated_at = NOW()
			RETURNING username, key, value, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected client state repository upsert error: %w", err)
	}

	var m ClientStateDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(&m.Username, &m.Key, &m.Value, &m.UpdatedAt)
	if err != nil {
		// схема ключей продублирована CHECK-ограничением
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%q: %w", entry.Key, service.ErrUnknownKey)
		}
		return nil, fmt.Errorf("unexpected client state repository upsert error: %w", err)
	}

	return ToDomain(&m), nil
}
