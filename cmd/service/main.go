package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	application "parcel-service/internal/app"
	"parcel-service/internal/handlers/rest/deliveries_agent_get"
	"parcel-service/internal/handlers/rest/deliveries_all_get"
	"parcel-service/internal/handlers/rest/deliveries_export_get"
	"parcel-service/internal/handlers/rest/delivery_post"
	"parcel-service/internal/handlers/rest/health_get"
	"parcel-service/internal/handlers/rest/healthcheck_head"
	"parcel-service/internal/handlers/rest/login_post"
	"parcel-service/internal/handlers/rest/package_delete"
	"parcel-service/internal/handlers/rest/package_get"
	"parcel-service/internal/handlers/rest/package_post"
	"parcel-service/internal/handlers/rest/packages_all_get"
	"parcel-service/internal/handlers/rest/packages_pending_get"
	"parcel-service/internal/handlers/rest/register_post"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/dotenv"
	"parcel-service/internal/pkg/grpchealth"
	"parcel-service/internal/pkg/kafka"
	metrics_system "parcel-service/internal/pkg/metrics"
	"parcel-service/internal/pkg/middlewares/cors"
	"parcel-service/internal/pkg/middlewares/graceful_shutdown"
	"parcel-service/internal/pkg/middlewares/metrics"
	"parcel-service/internal/pkg/middlewares/rate_limiter"
	"parcel-service/internal/pkg/middlewares/request_id"
	"parcel-service/internal/pkg/middlewares/timeout"
	"parcel-service/internal/pkg/migrations"
	"parcel-service/internal/pkg/postgres"
	"parcel-service/internal/pkg/redis"
	"parcel-service/internal/repository/photo"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/logger/zap_adapter"
	"parcel-service/pkg/token_bucket"
)

func main() {
	// логгер зависит от LOG_LEVEL, поэтому окружение читаем до него
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Server.LogLevel)
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

	mainLog.Info("starting parcel-service application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod        = 15 * time.Second
		shutdownHardPeriod    = 3 * time.Second
		readinessDrainDelay   = 5 * time.Second
		systemMetricsInterval = 5 * time.Second
		dbProbeInterval       = 10 * time.Second
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

	err = migrations.Up(ctx, log, pool)
	if err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	redisClient, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	if redisClient != nil {
		defer closeRedis(runLog, redisClient)
	}

	producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	if producer != nil {
		defer closeProducer(runLog, producer)
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, redisClient, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval, businessApp.PhotoStore.Dir())

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       60 * time.Second, // multipart с фото
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	// grpc health сервер
	var healthServer *grpchealth.Server
	var healthServerErr chan error
	if cfg.Server.GRPCHealthPort != "" {
		healthServer = grpchealth.New(log)
		go healthServer.RunProbe(ctx, pool, dbProbeInterval)

		healthServerErr = make(chan error, 1)
		go func() {
			defer close(healthServerErr)
			if err := healthServer.ListenAndServe(cfg.Server.GRPCHealthPort); err != nil {
				healthServerErr <- err
			}
		}()
	}
	// grpc health сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	if healthServer != nil {
		healthServer.SetServing(false)
	}

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
	if healthServer != nil {
		healthServer.Shutdown(shutdownCtx)
		runLog.Info("grpc health server stopped")
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	const (
		routeDeliveries       = "/deliveries"
		routeDeliveriesExport = "/deliveries/export"
	)

	// загрузка ждёт паузу и таймаут геокодера поверх обычного лимита
	timeoutOverrides := map[string]time.Duration{
		routeDeliveries:       cfg.Server.RequestTimeout + cfg.Geocoding.Delay + cfg.Geocoding.Timeout,
		routeDeliveriesExport: 2 * cfg.Server.RequestTimeout,
	}

	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout, timeoutOverrides))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/health", health_get.New(log)).Methods(http.MethodGet)

	router.Handle("/register", register_post.New(log, app.ServiceUser)).Methods(http.MethodPost)
	router.Handle("/login", login_post.New(log, app.ServiceUser)).Methods(http.MethodPost)

	// /packages/all и /packages/pending регистрируются раньше /packages/{id}
	router.Handle("/packages", package_post.New(log, app.ServiceParcel)).Methods(http.MethodPost)
	router.Handle("/packages/all", packages_all_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/packages/pending", packages_pending_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/packages/{id}", package_get.New(log, app.ServiceParcel)).Methods(http.MethodGet)
	router.Handle("/packages/{id}", package_delete.New(log, app.ServiceParcel)).Methods(http.MethodDelete)

	router.Handle(routeDeliveries, delivery_post.New(log, app.ServiceDelivery, cfg.Storage.MaxUploadBytes)).Methods(http.MethodPost)
	router.Handle("/deliveries/agent/{agent_id}", deliveries_agent_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	router.Handle("/deliveries/all", deliveries_all_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)
	router.Handle(routeDeliveriesExport, deliveries_export_get.New(log, app.ServiceDelivery)).Methods(http.MethodGet)

	uploads := "/" + photo.PathPrefix + "/"
	router.PathPrefix(uploads).
		Handler(http.StripPrefix(uploads, http.FileServer(http.Dir(app.PhotoStore.Dir())))).
		Methods(http.MethodGet, http.MethodHead)

	return cors.Middleware(cfg.Server.CORSOriginList())(router)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

func closeRedis(log logger.Logger, client *goredis.Client) {
	if err := client.Close(); err != nil {
		log.Error("failed to close redis client", logger.NewField("error", err))
	}
}

func closeProducer(log logger.Logger, producer sarama.SyncProducer) {
	if err := producer.Close(); err != nil {
		log.Error("failed to close kafka producer", logger.NewField("error", err))
	}
}
