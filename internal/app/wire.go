//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"parcel-service/internal/gateway/http/geocoding"
	"parcel-service/internal/gateway/kafka/delivery_events"
	deliveries_agent_get "parcel-service/internal/handlers/rest/deliveries_agent_get"
	deliveries_all_get "parcel-service/internal/handlers/rest/deliveries_all_get"
	deliveries_export_get "parcel-service/internal/handlers/rest/deliveries_export_get"
	delivery_post "parcel-service/internal/handlers/rest/delivery_post"
	login_post "parcel-service/internal/handlers/rest/login_post"
	package_delete "parcel-service/internal/handlers/rest/package_delete"
	package_get "parcel-service/internal/handlers/rest/package_get"
	package_post "parcel-service/internal/handlers/rest/package_post"
	packages_all_get "parcel-service/internal/handlers/rest/packages_all_get"
	packages_pending_get "parcel-service/internal/handlers/rest/packages_pending_get"
	register_post "parcel-service/internal/handlers/rest/register_post"
	"parcel-service/internal/handlers/tasks/photo_cleanup"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/password"

	deliveryRepo "parcel-service/internal/repository/delivery"
	"parcel-service/internal/repository/geocode_cache"
	parcelRepo "parcel-service/internal/repository/parcel"
	"parcel-service/internal/repository/photo"
	userRepo "parcel-service/internal/repository/user"
	deliveryService "parcel-service/internal/service/delivery"
	parcelService "parcel-service/internal/service/parcel"
	userService "parcel-service/internal/service/user"

	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"
)

type Application struct {
	ServiceUser       ServiceUser
	ServiceParcel     ServiceParcel
	ServiceDelivery   ServiceDelivery
	PhotoStore        *photo.Store
	BackgroundWorkers *background.Worker
}

type ServiceUser interface {
	register_post.Service
	login_post.Service
}

type ServiceParcel interface {
	package_post.Service
	packages_all_get.Service
	packages_pending_get.Service
	package_get.Service
	package_delete.Service
}

type ServiceDelivery interface {
	delivery_post.Service
	deliveries_agent_get.Service
	deliveries_all_get.Service
	deliveries_export_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// redisClient и producer могут быть nil: кеш геокодинга и события выключены.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideUserRepository,
		provideParcelRepository,
		provideDeliveryRepository,
		providePhotoStore,

		providePasswordHasher,
		provideGeocoder,
		provideEventPublisher,

		provideServiceUser,
		provideServiceParcel,
		provideServiceDelivery,

		providePhotoCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),

		wire.Bind(new(userService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(userService.PasswordHasher), new(*password.Hasher)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.UserService), new(*userService.User)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.PackageService), new(*parcelService.Parcel)),
		wire.Bind(new(deliveryService.UserService), new(*userService.User)),
		wire.Bind(new(deliveryService.PhotoStore), new(*photo.Store)),
		wire.Bind(new(deliveryService.Geocoder), new(*geocoding.Gateway)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(photo_cleanup.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func providePhotoStore(cfg *config.Config) (*photo.Store, error) {
	return photo.New(cfg.Storage.UploadDir)
}

func providePasswordHasher(cfg *config.Config) *password.Hasher {
	return password.New(cfg.Auth.BcryptCost)
}

// provideGeocoder без redis кеш не передаётся: nil *Cache в интерфейсе не равен nil.
func provideGeocoder(log logger.Logger, redisClient *goredis.Client, cfg *config.Config) *geocoding.Gateway {
	geocodingConfig := geocoding.Config{
		BaseURL:   cfg.Geocoding.BaseURL,
		UserAgent: cfg.Geocoding.UserAgent,
		Timeout:   cfg.Geocoding.Timeout,
		Delay:     cfg.Geocoding.Delay,
	}

	if redisClient == nil {
		return geocoding.New(log, geocodingConfig, nil)
	}
	return geocoding.New(log, geocodingConfig, geocode_cache.New(redisClient, cfg.Geocoding.CacheTTL))
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) deliveryService.EventPublisher {
	if producer == nil {
		return delivery_events.NoopPublisher{}
	}
	return delivery_events.New(producer, cfg.Kafka.Topic)
}

func provideServiceUser(
	repository userService.Repository,
	hasher userService.PasswordHasher,
) *userService.User {
	return userService.New(repository, hasher)
}

func provideServiceParcel(
	repository parcelService.Repository,
	users parcelService.UserService,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(repository, users, txManager)
}

func provideServiceDelivery(
	log logger.Logger,
	repository deliveryService.Repository,
	packages deliveryService.PackageService,
	users deliveryService.UserService,
	photoStore deliveryService.PhotoStore,
	geocoder deliveryService.Geocoder,
	publisher deliveryService.EventPublisher,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(
		repository,
		packages,
		users,
		photoStore,
		geocoder,
		publisher,
		txManager,
		log.With(logger.NewField("service", "delivery")),
	)
}

func providePhotoCleanupTask(
	log logger.Logger,
	service photo_cleanup.Service,
	cfg *config.Config,
) *photo_cleanup.PhotoCleanup {
	return photo_cleanup.NewPhotoCleanup(log, service, cfg.Tasks.PhotoCleanupInterval, cfg.Tasks.PhotoCleanupGrace)
}

func provideTaskList(
	photoCleanupTask *photo_cleanup.PhotoCleanup,
) []background.Task {
	return []background.Task{
		photoCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
