package pgdb

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CatalogRepo читает снимок каталога из PostgreSQL.
type CatalogRepo struct {
	pool         *pgxpool.Pool
	productConv  converter.ProductConverter
	categoryConv converter.CategoryConverter
	serviceConv  converter.ServiceConverter
}

func NewCatalogRepo(
	pool *pgxpool.Pool,
	productConv converter.ProductConverter,
	categoryConv converter.CategoryConverter,
	serviceConv converter.ServiceConverter,
) *CatalogRepo {
	return &CatalogRepo{
		pool:         pool,
		productConv:  productConv,
		categoryConv: categoryConv,
		serviceConv:  serviceConv,
	}
}

// LoadCatalog читает категории, бренды, активные товары и услуги в одной
// read-only транзакции, чтобы снимок был согласованным.
func (r *CatalogRepo) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categories, err := r.categories(ctx, tx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	brands, err := r.brands(ctx, tx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	products, err := r.products(ctx, tx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	services, err := r.services(ctx, tx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &domain.Catalog{
		Products:   products,
		Categories: categories,
		Brands:     brands,
		Services:   services,
	}, nil
}

func (r *CatalogRepo) categories(ctx context.Context, tx pgx.Tx) ([]domain.Category, error) {
	rows, err := tx.Query(ctx, `SELECT id, name, slug, icon, created_at, updated_at FROM categories ORDER BY id`)
	if err != nil {
		return nil, err
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.CategoryModel])
	if err != nil {
		return nil, err
	}

	result := make([]domain.Category, 0, len(models))
	for i := range models {
		result = append(result, *r.categoryConv.ToEntity(&models[i]))
	}
	return result, nil
}

func (r *CatalogRepo) brands(ctx context.Context, tx pgx.Tx) ([]domain.Brand, error) {
	rows, err := tx.Query(ctx, `SELECT id, name FROM brands ORDER BY id`)
	if err != nil {
		return nil, err
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.BrandModel])
	if err != nil {
		return nil, err
	}

	result := make([]domain.Brand, 0, len(models))
	for _, m := range models {
		result = append(result, domain.Brand{Name: m.Name})
	}
	return result, nil
}

func (r *CatalogRepo) products(ctx context.Context, tx pgx.Tx) ([]domain.Product, error) {
	query := `
		SELECT pr.id, pr.name, pr.price, cat.name AS category_name, br.name AS brand_name,
		       pr.rating, pr.image, pr.specs
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		JOIN brands br ON pr.brand_id = br.id
		WHERE pr.is_active = TRUE
		ORDER BY pr.id
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ProductModel])
	if err != nil {
		return nil, err
	}

	result := make([]domain.Product, 0, len(models))
	for i := range models {
		result = append(result, *r.productConv.ToEntity(&models[i]))
	}
	return result, nil
}

func (r *CatalogRepo) services(ctx context.Context, tx pgx.Tx) ([]domain.Service, error) {
	query := `
		SELECT id, name, description, price, category, duration_hours
		FROM services
		WHERE is_active = TRUE
		ORDER BY category, price, id
	`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	models, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.ServiceModel])
	if err != nil {
		return nil, err
	}

	result := make([]domain.Service, 0, len(models))
	for i := range models {
		result = append(result, *r.serviceConv.ToEntity(&models[i]))
	}
	return result, nil
}
