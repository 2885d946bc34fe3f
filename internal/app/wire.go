//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	orderGateway "ordertracker/internal/gateway/rest/order"
	"ordertracker/internal/handlers/tasks/collection_refresh"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/session"
	clientStateRepo "ordertracker/internal/repository/clientstate"
	historyRepo "ordertracker/internal/repository/history"
	authService "ordertracker/internal/service/auth"
	clientStateService "ordertracker/internal/service/clientstate"
	"ordertracker/internal/service/collection"
	historyService "ordertracker/internal/service/history"
	orderService "ordertracker/internal/service/order"
	"ordertracker/pkg/clock"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, func(), error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideClientStateRepository,
		provideHistoryRepository,

		provideServiceClientState,
		provideServiceHistory,

		provideIssuer,
		provideCredentials,
		provideServiceAuth,

		provideOrderStoreClient,
		provideOrderGateway,
		provideCollection,
		provideEventPublisher,
		provideLocation,
		clock.New,
		provideServiceOrder,

		provideCollectionRefreshInterval,
		provideCollectionRefreshTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAuth), new(*authService.Service)),
		wire.Bind(new(ServiceClientState), new(*clientStateService.Service)),
		wire.Bind(new(ServiceHistory), new(*historyService.Service)),

		wire.Bind(new(clientStateService.Repository), new(*clientStateRepo.Repository)),
		wire.Bind(new(clientStateService.TxManager), new(*tx.Manager)),
		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),

		wire.Bind(new(authService.TokenIssuer), new(*session.Issuer)),
		wire.Bind(new(authService.ClientStateService), new(*clientStateService.Service)),

		wire.Bind(new(orderService.Gateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderService.Collection), new(*collection.Store)),
		wire.Bind(new(orderService.Clock), new(clock.System)),

		wire.Bind(new(collection_refresh.Service), new(*orderService.Service)),
	)
	return nil, nil, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-lifecycle)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideHistoryRepository,
		provideServiceHistory,

		wire.Bind(new(historyService.Repository), new(*historyRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
