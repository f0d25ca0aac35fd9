package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/repository/redis/converter"
	"github.com/DRSN-tech/go-storefront/pkg/clients"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisValueToBytes(t *testing.T) {
	tests := []struct {
		name    string
		val     interface{}
		want    []byte
		wantErr bool
	}{
		{name: "string", val: `{"version":1}`, want: []byte(`{"version":1}`)},
		{name: "bytes", val: []byte("x"), want: []byte("x")},
		{name: "nil", val: nil, want: nil},
		{name: "unexpected", val: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := redisValueToBytes(tt.val, catalogKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCacheRepo_SnapshotEncoding(t *testing.T) {
	repo := NewCacheRepo(nil, converter.NewCatalogConverterImpl(), &cfg.RedisCfg{}, logger.NewNopLogger())

	catalog := &domain.Catalog{
		Products: []domain.Product{
			{ID: 1, Name: "IP-камера", Price: 12500, Category: "Видеокамеры", Brand: "Hikvision", Rating: 4.8, Specs: []string{"4 Мп"}},
		},
		Categories: []domain.Category{{Name: "Видеокамеры", Slug: "cameras", Icon: "camera"}},
		Brands:     []domain.Brand{{Name: "Hikvision"}},
		Services:   []domain.Service{{ID: 1, Name: "Доставка", Price: 1500, Category: domain.ServiceDelivery}},
	}

	data, err := repo.marshalCatalogForCache(repo.conv.ToRedisModel(catalog))
	require.NoError(t, err)

	model, err := repo.unmarshalCatalogFromCache(data)
	require.NoError(t, err)
	assert.Equal(t, converter.CatalogVersion, model.Version)

	if diff := cmp.Diff(catalog, repo.conv.ToEntity(model)); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	_, err = repo.unmarshalCatalogFromCache([]byte("not json"))
	assert.Error(t, err)
}

func TestCacheRepo_Unreachable(t *testing.T) {
	client := clients.NewRedisClient(&cfg.RedisCfg{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
		Timeout:     100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })

	repo := NewCacheRepo(client, converter.NewCatalogConverterImpl(), &cfg.RedisCfg{CatalogTTL: time.Minute}, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := repo.GetCatalog(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, e.ErrCacheMiss), "connection errors are not cache misses")

	assert.Error(t, repo.SetCatalog(ctx, &domain.Catalog{}))
}
