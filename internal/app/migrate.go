package app

import (
	"context"

	config "github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/repository/pgdb"
	"github.com/DRSN-tech/go-storefront/internal/repository/redis"
	redisConv "github.com/DRSN-tech/go-storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/go-storefront/internal/repository/static"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/clients"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/DRSN-tech/go-storefront/pkg/postgres"
	"github.com/jimlawless/whereami"
)

// Migrate применяет миграции PostgreSQL. С seed записывает в базу статический каталог
// и сбрасывает снимок каталога в Redis, если кэш включён.
func Migrate(ctx context.Context, cfg *config.Config, log logger.Logger, seed bool) error {
	dbCfg := cfg.Db
	if dbCfg == nil {
		var err error
		if dbCfg, err = config.LoadPGDBCfg(log); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	db, err := postgres.Connect(ctx, dbCfg)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer db.Close()

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if !seed {
		return nil
	}

	catalog, err := static.NewCatalogRepo(cfg.Catalog.File).LoadCatalog(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	var cache usecase.CatalogCache
	if cfg.Redis.Enabled {
		redisClient := clients.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
		cache = redis.NewCacheRepo(redisClient, redisConv.NewCatalogConverterImpl(), cfg.Redis, log)
	}

	seedUC := usecase.NewSeedUC(
		pgdb.NewCategoryRepo(),
		pgdb.NewBrandRepo(),
		pgdb.NewProductRepo(),
		pgdb.NewServiceRepo(),
		db.Pool,
		cache,
		log,
	)
	if err := seedUC.SeedCatalog(ctx, catalog); err != nil {
		log.Errorf(err, "failed to seed catalog")
		return e.Wrap(whereami.WhereAmI(), err)
	}

	log.Infof("Catalog seeded: %d products, %d services", len(catalog.Products), len(catalog.Services))
	return nil
}
