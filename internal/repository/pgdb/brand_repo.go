package pgdb

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/tr"
	"github.com/jimlawless/whereami"
)

// BrandRepo реализует запись брендов в PostgreSQL.
type BrandRepo struct{}

func NewBrandRepo() *BrandRepo {
	return &BrandRepo{}
}

// Upsert идемпотентно создаёт бренд по имени и возвращает его идентификатор.
func (b *BrandRepo) Upsert(ctx context.Context, brand *domain.Brand) (int64, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		WITH ins AS (
		INSERT INTO brands (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
		)
		SELECT id FROM ins
		UNION ALL
		SELECT id FROM brands
		WHERE name = $1
		  AND NOT EXISTS (SELECT 1 FROM ins);
	`

	var id int64
	if err := tx.QueryRow(ctx, query, brand.Name).Scan(&id); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return id, nil
}
