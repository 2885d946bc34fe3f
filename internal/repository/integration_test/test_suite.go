package integration_test

import (
	"context"
	"log"
	"net"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/postgres"
	"ordertracker/pkg/logger/zap_adapter"
	"ordertracker/pkg/querier"
)

const postgresImage = "postgres:16-alpine"

var (
	querierInstance *querier.Querier
	poolInstance    *pgxpool.Pool
	container       testcontainers.Container
	querierOnce     sync.Once
)

// GetQuerier поднимает базу один раз на пакет: внешнюю из POSTGRES_* или
// одноразовый контейнер, если переменные не заданы.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			_ = zapLogger.Sync()
		}()

		cfg := databaseFromEnv()
		if cfg.Host == "" {
			cfg, err = startContainer(ctx)
			if err != nil {
				log.Fatalf("failed to start postgres container: %v", err)
			}
		}

		poolInstance, err = postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect postgres: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, poolInstance); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}

		querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
	})

	return querierInstance
}

func GetPool() *pgxpool.Pool {
	GetQuerier()
	return poolInstance
}

// Shutdown вызывается из TestMain после всех тестов пакета.
func Shutdown() {
	if poolInstance != nil {
		poolInstance.Close()
	}
	if container != nil {
		if err := container.Terminate(context.Background()); err != nil {
			log.Printf("terminate postgres container: %v", err)
		}
	}
}

func databaseFromEnv() *config.Database {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

func startContainer(ctx context.Context) (*config.Database, error) {
	pg, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase("tracker_test"),
		tcpostgres.WithUsername("tracker"),
		tcpostgres.WithPassword("tracker"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, err
	}
	container = pg

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return nil, err
	}
	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		return nil, err
	}
	password, _ := u.User.Password()

	return &config.Database{
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   "tracker_test",
		SSLMode:  "disable",
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_events, client_state;
	`)
	require.NoError(t, err)
}
