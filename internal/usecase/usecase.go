package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/google/uuid"
)

type ProductUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
	GetMetadata(ctx context.Context) (*domain.Metadata, error)
	ListServices(ctx context.Context, req *ListServicesReq) (*ListServicesRes, error)
	QuoteLines(ctx context.Context, lines []QuoteLineReq) (*domain.Quote, error)
}

type CartUC interface {
	CreateCart(ctx context.Context) (*CartRes, error)
	GetCart(ctx context.Context, id uuid.UUID) (*CartRes, error)
	AddItem(ctx context.Context, id uuid.UUID, productID int64) (*CartRes, error)
	SetAddOn(ctx context.Context, req *SetAddOnReq) (*CartRes, error)
	RemoveItem(ctx context.Context, id uuid.UUID, productID int64) (*CartRes, error)
	ClearCart(ctx context.Context, id uuid.UUID) (*CartRes, error)
	QuoteCart(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
}

// CatalogProvider отдаёт текущий снимок каталога.
type CatalogProvider interface {
	Catalog() (*domain.Catalog, error)
}
