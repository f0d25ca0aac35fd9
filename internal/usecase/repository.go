package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/google/uuid"
)

// CatalogSource загружает полный каталог из хранилища.
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
}

// CatalogCache хранит снимок каталога. Промах возвращает e.ErrCacheMiss.
type CatalogCache interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
	SetCatalog(ctx context.Context, catalog *domain.Catalog) error
	DeleteCatalog(ctx context.Context) error
}

// CartRepository хранит сессии корзин.
type CartRepository interface {
	Create(ctx context.Context) (*CartSession, error)
	Get(ctx context.Context, id uuid.UUID) (*CartSession, error)
	// Update атомарно применяет mutation. Если корзина не изменилась, сессия не обновляется.
	Update(ctx context.Context, id uuid.UUID, mutation CartMutation) (*CartSession, bool, error)
}

type CategoryRepository interface {
	Upsert(ctx context.Context, category *domain.Category) (int64, error)
}

type BrandRepository interface {
	Upsert(ctx context.Context, brand *domain.Brand) (int64, error)
}

type ProductRepository interface {
	Upsert(ctx context.Context, product *domain.Product, categoryID, brandID int64) error
}

type ServiceRepository interface {
	Upsert(ctx context.Context, service *domain.Service) error
}

type ImageRepository interface {
	PresignedURL(ctx context.Context, image *domain.Image) (string, error)
}
