package pgdb

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/tr"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует запись товаров в PostgreSQL.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// Upsert идемпотентно создаёт или обновляет товар по идентификатору каталога.
// Запись обновляется только при изменении хотя бы одного поля.
func (p *ProductRepo) Upsert(ctx context.Context, product *domain.Product, categoryID, brandID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	specs := product.Specs
	if specs == nil {
		specs = []string{}
	}

	// VALUES ($1 .. $8) id, name, price, category_id, brand_id, rating, image, specs
	query := `
		INSERT INTO products (id, name, price, category_id, brand_id, rating, image, specs, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			category_id = EXCLUDED.category_id,
			brand_id = EXCLUDED.brand_id,
			rating = EXCLUDED.rating,
			image = EXCLUDED.image,
			specs = EXCLUDED.specs,
			is_active = TRUE,
			updated_at = NOW()
		WHERE
			products.name IS DISTINCT FROM EXCLUDED.name OR
			products.price IS DISTINCT FROM EXCLUDED.price OR
			products.category_id IS DISTINCT FROM EXCLUDED.category_id OR
			products.brand_id IS DISTINCT FROM EXCLUDED.brand_id OR
			products.rating IS DISTINCT FROM EXCLUDED.rating OR
			products.image IS DISTINCT FROM EXCLUDED.image OR
			products.specs IS DISTINCT FROM EXCLUDED.specs OR
			NOT products.is_active;
	`

	if _, err := tx.Exec(ctx, query,
		product.ID, product.Name, product.Price, categoryID, brandID,
		product.Rating, product.Image, specs,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
