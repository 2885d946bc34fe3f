package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"ordertracker/internal/entities"
	lifecycleGateway "ordertracker/internal/gateway/kafka/lifecycle"
	orderGateway "ordertracker/internal/gateway/rest/order"
	"ordertracker/internal/handlers/rest/analytics_get"
	"ordertracker/internal/handlers/rest/auth_login_post"
	"ordertracker/internal/handlers/rest/auth_logout_post"
	"ordertracker/internal/handlers/rest/calendar_day_get"
	"ordertracker/internal/handlers/rest/calendar_month_get"
	"ordertracker/internal/handlers/rest/client_state_get"
	"ordertracker/internal/handlers/rest/client_state_put"
	"ordertracker/internal/handlers/rest/dashboard_get"
	"ordertracker/internal/handlers/rest/order_delete"
	"ordertracker/internal/handlers/rest/order_get"
	"ordertracker/internal/handlers/rest/order_history_get"
	"ordertracker/internal/handlers/rest/order_payment_advance_post"
	"ordertracker/internal/handlers/rest/order_post"
	"ordertracker/internal/handlers/rest/order_put"
	"ordertracker/internal/handlers/rest/order_status_advance_post"
	"ordertracker/internal/handlers/rest/orders_get"
	"ordertracker/internal/handlers/rest/orders_search_get"
	"ordertracker/internal/handlers/tasks/collection_refresh"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/kafka"
	"ordertracker/internal/pkg/session"
	clientStateRepo "ordertracker/internal/repository/clientstate"
	historyRepo "ordertracker/internal/repository/history"
	authService "ordertracker/internal/service/auth"
	clientStateService "ordertracker/internal/service/clientstate"
	"ordertracker/internal/service/collection"
	historyService "ordertracker/internal/service/history"
	orderService "ordertracker/internal/service/order"
	"ordertracker/pkg/background"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/querier"
	"ordertracker/pkg/tx"
)

type CollectionRefreshInterval time.Duration

// Application - все, что нужно HTTP-роутеру.
type Application struct {
	ServiceOrder       ServiceOrder
	ServiceAuth        ServiceAuth
	ServiceClientState ServiceClientState
	ServiceHistory     ServiceHistory
	Collection         *collection.Store
	Issuer             *session.Issuer
	BackgroundWorkers  *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	orders_search_get.Service
	order_get.Service
	order_post.Service
	order_put.Service
	order_delete.Service
	order_status_advance_post.Service
	order_payment_advance_post.Service
	dashboard_get.Service
	analytics_get.Service
	calendar_month_get.Service
	calendar_day_get.Service
}

type ServiceAuth interface {
	auth_login_post.Service
	auth_logout_post.Service
}

type ServiceClientState interface {
	client_state_get.Service
	client_state_put.Service
}

type ServiceHistory interface {
	order_history_get.Service
}

// KafkaWorkerApp - зависимости воркера журнала переходов.
type KafkaWorkerApp struct {
	HistoryService *historyService.Service
}

// provideTxManager - для upsert'ов состояния клиента Serializable избыточен,
// конфликт ключей разрешает ON CONFLICT.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithIsoLevel(pgx.ReadCommitted))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClientStateRepository(querier *querier.Querier) *clientStateRepo.Repository {
	return clientStateRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideServiceClientState(
	repository clientStateService.Repository,
	txManager clientStateService.TxManager,
) *clientStateService.Service {
	return clientStateService.New(repository, txManager)
}

func provideServiceHistory(log logger.Logger, repository historyService.Repository) *historyService.Service {
	return historyService.New(log, repository)
}

func provideIssuer(cfg *config.Config) *session.Issuer {
	return session.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

// provideCredentials - пустой слот в конфиге означает, что такой роли нет.
func provideCredentials(cfg *config.Config) []authService.Credential {
	slots := []struct {
		user config.User
		role entities.Role
	}{
		{user: cfg.Auth.Admin, role: entities.RoleAdmin},
		{user: cfg.Auth.User, role: entities.RoleUser},
	}

	credentials := make([]authService.Credential, 0, len(slots))
	for _, slot := range slots {
		if slot.user.Username == "" {
			continue
		}
		credentials = append(credentials, authService.Credential{
			Username:     slot.user.Username,
			PasswordHash: slot.user.PasswordHash,
			Role:         slot.role,
		})
	}
	return credentials
}

func provideServiceAuth(
	log logger.Logger,
	credentials []authService.Credential,
	issuer authService.TokenIssuer,
	clientState authService.ClientStateService,
) *authService.Service {
	return authService.New(log, credentials, issuer, clientState)
}

func provideOrderStoreClient(cfg *config.Config) *http.Client {
	return &http.Client{Timeout: cfg.OrderStore.Timeout}
}

func provideOrderGateway(client *http.Client, cfg *config.Config) *orderGateway.OrderGateway {
	return orderGateway.New(client, cfg.OrderStore.BaseURL, orderGateway.WithLocation(cfg.Calendar.Location))
}

func provideCollection() *collection.Store {
	return collection.New()
}

// provideEventPublisher - при выключенной публикации переходы не уходят в Kafka,
// журнал в этом случае не пополняется.
func provideEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Config) (orderService.EventPublisher, func(), error) {
	if !cfg.Kafka.PublisherEnabled {
		log.Warn("lifecycle publisher disabled, transitions are not journaled")
		return lifecycleGateway.Noop{}, func() {}, nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := producer.Close(); err != nil {
			log.Error("failed to close kafka producer", logger.NewField("error", err))
		}
	}
	return lifecycleGateway.New(producer, cfg.Kafka.Topic), cleanup, nil
}

func provideLocation(cfg *config.Config) *time.Location {
	return cfg.Calendar.Location
}

func provideServiceOrder(
	log logger.Logger,
	gateway orderService.Gateway,
	collection orderService.Collection,
	publisher orderService.EventPublisher,
	clock orderService.Clock,
	location *time.Location,
) *orderService.Service {
	return orderService.New(log, gateway, collection, publisher, clock, location)
}

func provideCollectionRefreshInterval(cfg *config.Config) CollectionRefreshInterval {
	return CollectionRefreshInterval(cfg.Tasks.CollectionRefreshInterval)
}

func provideCollectionRefreshTask(
	log logger.Logger,
	service collection_refresh.Service,
	interval CollectionRefreshInterval,
) *collection_refresh.CollectionRefresh {
	return collection_refresh.NewCollectionRefresh(log, service, time.Duration(interval))
}

func provideTaskList(
	collectionRefreshTask *collection_refresh.CollectionRefresh,
) []background.Task {
	return []background.Task{
		collectionRefreshTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
