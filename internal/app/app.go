package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/go-storefront/internal/cfg"
	v1Grpc "github.com/DRSN-tech/go-storefront/internal/delivery/v1/grpc"
	v1Http "github.com/DRSN-tech/go-storefront/internal/delivery/v1/http"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/infrastructure/kafka"
	minioInfra "github.com/DRSN-tech/go-storefront/internal/infrastructure/minio"
	"github.com/DRSN-tech/go-storefront/internal/repository/memory"
	s3Repo "github.com/DRSN-tech/go-storefront/internal/repository/minio"
	"github.com/DRSN-tech/go-storefront/internal/repository/pgdb"
	pgdbConv "github.com/DRSN-tech/go-storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/go-storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/go-storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/go-storefront/internal/repository/static"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/clients"
	"github.com/DRSN-tech/go-storefront/pkg/closer"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/DRSN-tech/go-storefront/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	forcedTimeout   = 2 * time.Second
)

// App — собранное приложение витрины: HTTP и gRPC поверх общего снимка каталога.
type App struct {
	cfg        *config.Config
	logger     logger.Logger
	closer     *closer.Closer
	productUC  *usecase.ProductUseCase
	cartUC     *usecase.CartUseCase
	dispatcher *kafka.Dispatcher // nil, если Kafka отключена
	httpSrv    *v1Http.Server
	grpcSrv    *v1Grpc.GRPCServer
}

// NewApp поднимает зависимости по конфигурации и загружает каталог.
// При ошибке уже открытые ресурсы закрываются.
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) (app *App, err error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedTimeout),
	}
	defer func() {
		if err != nil {
			a.shutdown()
		}
	}()

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	source, err := a.catalogSource(initCtx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var cache usecase.CatalogCache
	if cfg.Redis.Enabled {
		if cache, err = a.catalogCache(initCtx); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	var images usecase.ImagesInfra
	if cfg.Minio.Enabled {
		if images, err = a.imagesInfra(initCtx); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	var publisher usecase.EventPublisher
	if cfg.Kafka.Enabled {
		if a.dispatcher, err = a.eventDispatcher(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		publisher = a.dispatcher
	}

	pricing := Pricing(cfg.Cart)
	a.productUC = usecase.NewProductUC(source, cache, images, pricing, log)
	if err := a.productUC.LoadCatalog(initCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.cartUC = usecase.NewCartUC(memory.NewCartRepo(), a.productUC, pricing, publisher, log)

	mux := chi.NewRouter()
	v1Http.NewRouter(mux, cfg.Http, log).Init(a.productUC, a.cartUC)
	a.httpSrv = v1Http.NewServer(mux, cfg.Http)

	a.grpcSrv = v1Grpc.NewGRPCServer(cfg.Grpc, log)
	a.grpcSrv.RegisterServices(a.productUC)

	return a, nil
}

// OpenCatalog загружает каталог из настроенного источника без кэша, брокера и серверов.
// Используется командами CLI; ресурсы освобождает Close.
func OpenCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (app *App, err error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.NewCloser(forcedTimeout),
	}
	defer func() {
		if err != nil {
			a.shutdown()
		}
	}()

	source, err := a.catalogSource(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.productUC = usecase.NewProductUC(source, nil, nil, Pricing(cfg.Cart), log)
	if err := a.productUC.LoadCatalog(ctx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a, nil
}

// Run запускает серверы и блокируется до сигнала остановки, отмены ctx или падения сервера.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.dispatcher != nil {
		a.dispatcher.Start(context.WithoutCancel(ctx))
		a.closer.Add("kafka dispatcher", a.dispatcher.Stop)
	}

	errCh := make(chan error, 2)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil {
			errCh <- e.Wrap("HTTP server", err)
		}
	}()
	a.closer.Add("http server", a.httpSrv.Stop)

	go func() {
		if err := a.grpcSrv.Start(); err != nil {
			errCh <- e.Wrap("gRPC server", err)
		}
	}()
	a.closer.Add("grpc server", a.grpcSrv.Stop)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "server failed")
	case <-ctx.Done():
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	if err := a.shutdown(); err != nil {
		return errors.Join(appErr, err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// ProductUC отдаёт usecase каталога, например для CLI.
func (a *App) ProductUC() *usecase.ProductUseCase {
	return a.productUC
}

// Close освобождает ресурсы приложения без запуска серверов.
func (a *App) Close() error {
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "shutdown failed")
		return err
	}
	return nil
}

func (a *App) catalogSource(ctx context.Context) (usecase.CatalogSource, error) {
	if a.cfg.Catalog.Source != config.CatalogSourcePostgres {
		a.logger.Infof("Using static catalog %q", a.cfg.Catalog.File)
		return static.NewCatalogRepo(a.cfg.Catalog.File), nil
	}

	db, err := postgres.Connect(ctx, a.cfg.Db)
	if err != nil {
		a.logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	a.closer.AddFunc("postgres", db.Close)

	return pgdb.NewCatalogRepo(
		db.Pool,
		pgdbConv.ProductConverterImpl{},
		pgdbConv.CategoryConverterImpl{},
		pgdbConv.ServiceConverterImpl{},
	), nil
}

func (a *App) catalogCache(ctx context.Context) (usecase.CatalogCache, error) {
	redisClient := clients.NewRedisClient(a.cfg.Redis)
	a.closer.Add("redis", func(context.Context) error { return redisClient.Close() })

	if err := redisClient.Ping(ctx); err != nil {
		a.logger.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return redis.NewCacheRepo(redisClient, redisConv.NewCatalogConverterImpl(), a.cfg.Redis, a.logger), nil
}

func (a *App) imagesInfra(ctx context.Context) (usecase.ImagesInfra, error) {
	minioClient, err := clients.NewMinIOClient(a.cfg.Minio)
	if err != nil {
		a.logger.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := clients.EnsureBucket(ctx, minioClient, a.cfg.Minio.BucketName); err != nil {
		a.logger.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	imageRepo := s3Repo.NewImageRepo(minioClient, a.cfg.Minio)
	return minioInfra.NewMinioInfrastructure(imageRepo, a.cfg.Minio, a.logger), nil
}

func (a *App) eventDispatcher() (*kafka.Dispatcher, error) {
	producer := kafka.NewProducer(a.logger, a.cfg.Kafka)
	a.closer.Add("kafka producer", func(context.Context) error { return producer.Close() })

	if err := producer.EnsureTopic(initTimeout); err != nil {
		a.logger.Errorf(err, "failed to ensure kafka topic")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return kafka.NewDispatcher(producer, a.logger, a.cfg.Kafka.QueueSize, a.cfg.Kafka.MaxRetries), nil
}

// Pricing переводит настройки корзины в тарифы домена.
func Pricing(cfg *config.CartCfg) domain.Pricing {
	if cfg == nil {
		return domain.DefaultPricing()
	}

	return domain.Pricing{
		DeliveryFee:      cfg.DeliveryFee,
		InstallationRate: cfg.InstallationRate,
	}
}
