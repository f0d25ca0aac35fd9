package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/go-storefront/pkg/clients"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:snapshot"

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalog возвращает снимок каталога из кэша или e.ErrCacheMiss.
// Повреждённый снимок или снимок другой версии удаляется и считается промахом.
func (r *CacheRepo) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	val, err := r.client.Client.Get(ctx, catalogKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.ErrCacheMiss
		}
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data, err := redisValueToBytes(val, catalogKey)
	if err != nil || data == nil {
		return nil, e.ErrCacheMiss
	}

	model, err := r.unmarshalCatalogFromCache(data)
	if err != nil || model.Version != converter.CatalogVersion {
		r.logger.Warnf("Dropping unreadable catalog snapshot: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.DeleteCatalog(context.WithoutCancel(ctx)); err != nil {
			r.logger.Warnf("Redis del failed: %v", err)
		}
		return nil, e.ErrCacheMiss
	}

	return r.conv.ToEntity(model), nil
}

// SetCatalog кэширует снимок каталога с заданным TTL.
func (r *CacheRepo) SetCatalog(ctx context.Context, catalog *domain.Catalog) error {
	data, err := r.marshalCatalogForCache(r.conv.ToRedisModel(catalog))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, catalogKey, data, r.cfg.CatalogTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteCatalog удаляет снимок каталога из кэша
func (r *CacheRepo) DeleteCatalog(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, catalogKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// marshalCatalogForCache сериализует снимок в JSON для кэша
func (r *CacheRepo) marshalCatalogForCache(model *converter.CatalogRedisModel) ([]byte, error) {
	return json.Marshal(model)
}

// unmarshalCatalogFromCache десериализует JSON из кэша в модель снимка
func (r *CacheRepo) unmarshalCatalogFromCache(data []byte) (*converter.CatalogRedisModel, error) {
	var model converter.CatalogRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
