package pgdb

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/tr"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует запись категорий в PostgreSQL.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

// Upsert идемпотентно создаёт категорию по имени и возвращает её идентификатор.
// Слаг и иконка обновляются только при изменении.
func (c *CategoryRepo) Upsert(ctx context.Context, category *domain.Category) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH upsert AS (
		INSERT INTO categories (name, slug, icon)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET
			slug = EXCLUDED.slug,
			icon = EXCLUDED.icon,
			updated_at = NOW()
		WHERE
			categories.slug IS DISTINCT FROM EXCLUDED.slug OR
			categories.icon IS DISTINCT FROM EXCLUDED.icon
		RETURNING id
		)
		SELECT id FROM upsert
		UNION ALL
		SELECT id FROM categories
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM upsert);
	`

	var id int64
	if err := tx.QueryRow(ctx, query, category.Name, category.Slug, category.Icon).Scan(&id); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}
