package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"ordertracker/internal/pkg/config"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/retrier"
	"ordertracker/pkg/retrier/backoff_adapter"
)

const (
	defaultMaxConns = 10
	defaultMinConns = 2
	maxConnLifetime = time.Hour

	pingInitialInterval = 5 * time.Second
)

// NewConnPool открывает пул и ждет, пока база ответит на ping,
// с экспоненциальными повторами (retrier.Startup).
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns, poolCfg.MinConns = poolSize(cfg)
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
		logger.NewField("max_conns", poolCfg.MaxConns),
	)

	err = pingDatabase(ctx, dbLog, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDsn экранирует логин и пароль: в них допустимы '@', ':' и '/'.
func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   net.JoinHostPort(cfg.Host, cfg.Port),
		Path:   "/" + cfg.DBName,
	}
	if cfg.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {cfg.SSLMode}}.Encode()
	}
	return dsn.String()
}

func poolSize(cfg *config.Database) (maxConns, minConns int32) {
	maxConns, minConns = defaultMaxConns, defaultMinConns
	if cfg.MaxConns > 0 {
		maxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		minConns = cfg.MinConns
	}
	return maxConns, min(minConns, maxConns)
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	retryConfig := retrier.Startup(pingInitialInterval)
	retryConfig.OnRetry = func(err error, next time.Duration) {
		log.Warn("database is not ready yet",
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", next),
		)
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return pool.Ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Database connection failed after retries")
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Database connection established")
	return nil
}
