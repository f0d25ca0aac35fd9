package pgdb

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/tr"
	"github.com/jimlawless/whereami"
)

// ServiceRepo реализует запись услуг в PostgreSQL.
type ServiceRepo struct{}

func NewServiceRepo() *ServiceRepo {
	return &ServiceRepo{}
}

func (s *ServiceRepo) Upsert(ctx context.Context, service *domain.Service) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO services (id, name, description, price, category, duration_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			category = EXCLUDED.category,
			duration_hours = EXCLUDED.duration_hours,
			is_active = TRUE,
			updated_at = NOW()
		WHERE
			services.name IS DISTINCT FROM EXCLUDED.name OR
			services.description IS DISTINCT FROM EXCLUDED.description OR
			services.price IS DISTINCT FROM EXCLUDED.price OR
			services.category IS DISTINCT FROM EXCLUDED.category OR
			services.duration_hours IS DISTINCT FROM EXCLUDED.duration_hours OR
			NOT services.is_active;
	`

	if _, err := tx.Exec(ctx, query,
		service.ID, service.Name, service.Description, service.Price,
		string(service.Category), service.DurationHours,
	); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
