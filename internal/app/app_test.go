package app

import (
	"context"
	"testing"

	config "github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing(t *testing.T) {
	assert.Equal(t, domain.DefaultPricing(), Pricing(nil))

	p := Pricing(&config.CartCfg{DeliveryFee: 990, InstallationRate: decimal.RequireFromString("0.2")})
	assert.Equal(t, int64(990), p.DeliveryFee)
	assert.Equal(t, int64(2000), p.InstallationFee(10000))
}

func TestOpenCatalog_Static(t *testing.T) {
	cfg := &config.Config{
		Catalog: &config.CatalogCfg{Source: config.CatalogSourceStatic},
		Cart:    &config.CartCfg{DeliveryFee: 1500, InstallationRate: decimal.RequireFromString("0.15")},
	}

	a, err := OpenCatalog(context.Background(), cfg, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, a.Close()) })

	res, err := a.ProductUC().ListProducts(context.Background(), &usecase.ListProductsReq{Filter: domain.DefaultFilterState()})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Page.Total)
}

func TestOpenCatalog_MissingFile(t *testing.T) {
	cfg := &config.Config{
		Catalog: &config.CatalogCfg{Source: config.CatalogSourceStatic, File: "does-not-exist.yaml"},
	}

	_, err := OpenCatalog(context.Background(), cfg, logger.NewNopLogger())
	require.Error(t, err)
}
