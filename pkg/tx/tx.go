package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакцию и кладет ее в контекст, откуда ее забирает querier.
type Manager struct {
	internal *manager.Manager
	isoLevel pgx.TxIsoLevel
}

type Option func(*Manager)

// WithIsoLevel меняет уровень изоляции по умолчанию (Serializable).
func WithIsoLevel(level pgx.TxIsoLevel) Option {
	return func(m *Manager) {
		m.isoLevel = level
	}
}

func New(db pgxv5.Transactional, opts ...Option) *Manager {
	m := &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		isoLevel: pgx.Serializable,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// Do выполняет fn в транзакции. Вложенный вызов переиспользует внешнюю транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, m.isoLevel, fn)
}
