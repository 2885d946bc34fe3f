package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "ordertracker/internal/app"
	"ordertracker/internal/handlers/rest/analytics_get"
	"ordertracker/internal/handlers/rest/auth_login_post"
	"ordertracker/internal/handlers/rest/auth_logout_post"
	"ordertracker/internal/handlers/rest/calendar_day_get"
	"ordertracker/internal/handlers/rest/calendar_month_get"
	"ordertracker/internal/handlers/rest/client_state_get"
	"ordertracker/internal/handlers/rest/client_state_put"
	"ordertracker/internal/handlers/rest/dashboard_get"
	"ordertracker/internal/handlers/rest/healthcheck_head"
	"ordertracker/internal/handlers/rest/order_delete"
	"ordertracker/internal/handlers/rest/order_get"
	"ordertracker/internal/handlers/rest/order_history_get"
	"ordertracker/internal/handlers/rest/order_payment_advance_post"
	"ordertracker/internal/handlers/rest/order_post"
	"ordertracker/internal/handlers/rest/order_put"
	"ordertracker/internal/handlers/rest/order_status_advance_post"
	"ordertracker/internal/handlers/rest/orders_get"
	"ordertracker/internal/handlers/rest/orders_search_get"
	"ordertracker/internal/handlers/rest/ping_get"
	"ordertracker/internal/pkg/config"
	"ordertracker/internal/pkg/dotenv"
	metrics_system "ordertracker/internal/pkg/metrics"
	"ordertracker/internal/pkg/middlewares/auth"
	"ordertracker/internal/pkg/middlewares/graceful_shutdown"
	"ordertracker/internal/pkg/middlewares/metrics"
	"ordertracker/internal/pkg/middlewares/rate_limiter"
	"ordertracker/internal/pkg/middlewares/timeout"
	"ordertracker/internal/pkg/postgres"
	"ordertracker/pkg/clock"
	"ordertracker/pkg/logger"
	"ordertracker/pkg/logger/zap_adapter"
	"ordertracker/pkg/token_bucket"
)

func main() {
	// .env и конфиг читаем до логгера: от них зависит уровень логирования
	envLoaded, err := dotenv.Load()
	if err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}
	if err := dotenv.ApplyFlags(os.Args[0], os.Args[1:]); err != nil {
		stdlog.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Logger.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting order-tracker application", logger.NewField("log_level", cfg.Logger.Level))
	if !envLoaded {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	businessApp, cleanup, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer cleanup()

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.DefaultCollectInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second,  // Slowloris DoS gosec G112
		ReadTimeout:       30 * time.Second, // multipart с вложением
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// фоновое обновление коллекции остановилось вместе с ctx
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	// три пропущенных обновления подряд - под выводится из балансировки
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, app.Collection,
		healthcheck_head.WithMaxStaleness(3*cfg.Tasks.CollectionRefreshInterval, time.Now),
	)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, clock.New())).Methods(http.MethodGet)
	router.Handle("/auth/login", auth_login_post.New(log, app.ServiceAuth)).Methods(http.MethodPost)

	// все остальное - только с сессией, роль проверяют сервисы
	private := router.NewRoute().Subrouter()
	private.Use(auth.Middleware(log, app.Issuer))

	private.Handle("/auth/logout", auth_logout_post.New(log, app.ServiceAuth)).Methods(http.MethodPost)

	private.Handle("/orders", orders_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	private.Handle("/orders/search", orders_search_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/orders/{id}", order_put.New(log, app.ServiceOrder)).Methods(http.MethodPut)
	private.Handle("/orders/{id}", order_delete.New(log, app.ServiceOrder)).Methods(http.MethodDelete)
	private.Handle("/orders/{id}/status/advance", order_status_advance_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	private.Handle("/orders/{id}/payment/advance", order_payment_advance_post.New(log, app.ServiceOrder)).Methods(http.MethodPost)
	private.Handle("/orders/{id}/history", order_history_get.New(log, app.ServiceHistory)).Methods(http.MethodGet)

	private.Handle("/dashboard", dashboard_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/analytics", analytics_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/calendar/day/{date}", calendar_day_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)
	private.Handle("/calendar/{year:[0-9]{4}}/{month:[0-9]{1,2}}", calendar_month_get.New(log, app.ServiceOrder)).Methods(http.MethodGet)

	clientStatePut := client_state_put.New(log, app.ServiceClientState)
	private.Handle("/client/state", client_state_get.New(log, app.ServiceClientState)).Methods(http.MethodGet)
	private.Handle("/client/state", clientStatePut).Methods(http.MethodPut)
	private.Handle("/client/state/{key}", clientStatePut).Methods(http.MethodPut)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
