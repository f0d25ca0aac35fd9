package static

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepo_Embedded(t *testing.T) {
	c, err := NewCatalogRepo("").LoadCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, c.Products, 6)
	assert.Len(t, c.Categories, 5)
	assert.Len(t, c.Brands, 8)
	assert.NotEmpty(t, c.Services)

	p, ok := c.ProductByID(1)
	require.True(t, ok)
	assert.Equal(t, "IP-камера Hikvision DS-2CD2143G2-I 4MP", p.Name)
	assert.Equal(t, int64(12500), p.Price)
	assert.Equal(t, "Видеокамеры", p.Category)
	assert.Equal(t, 4.8, p.Rating)
	assert.Equal(t, []string{"4MP", "ИК до 30м", "WDR 120dB", "H.265+"}, p.Specs)

	for i, p := range c.Products {
		assert.Equal(t, int64(i+1), p.ID, "catalog order")
	}
}

func TestCatalogRepo_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte(`
categories:
  - {name: Домофоны, slug: intercoms, icon: Phone}
brands: [Tantos]
products:
  - {id: 10, name: Видеодомофон Tantos, price: 9900, category: Домофоны, brand: Tantos}
services: []
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := NewCatalogRepo(path).LoadCatalog(context.Background())
	require.NoError(t, err)

	require.Len(t, c.Products, 1)
	assert.Equal(t, int64(9900), c.Products[0].Price)
	assert.Equal(t, "Phone", c.Categories[0].Icon)
}

func TestCatalogRepo_MissingFile(t *testing.T) {
	_, err := NewCatalogRepo(filepath.Join(t.TempDir(), "nope.yaml")).LoadCatalog(context.Background())
	require.Error(t, err)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "duplicate id",
			data: `
categories: [{name: A}]
products:
  - {id: 1, name: x, price: 1, category: A}
  - {id: 1, name: y, price: 2, category: A}
`,
		},
		{
			name: "negative price",
			data: `
categories: [{name: A}]
products: [{id: 1, name: x, price: -5, category: A}]
`,
		},
		{
			name: "unknown category",
			data: `
categories: [{name: A}]
products: [{id: 1, name: x, price: 5, category: B}]
`,
		},
		{
			name: "unknown service category",
			data: `
services: [{id: 1, name: x, price: 5, category: painting}]
`,
		},
		{
			name: "unknown field",
			data: `
categories: [{name: A, colour: red}]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, e.ErrInvalidCatalog), err.Error())
		})
	}
}

func TestParseCatalog_ServiceCategories(t *testing.T) {
	c, err := NewCatalogRepo("").LoadCatalog(context.Background())
	require.NoError(t, err)

	for _, s := range c.Services {
		assert.Contains(t,
			[]domain.ServiceCategory{domain.ServiceDelivery, domain.ServiceInstallation, domain.ServiceSetup},
			s.Category,
		)
	}
}
