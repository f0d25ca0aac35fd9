package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/DRSN-tech/go-storefront/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// SeedUseCase переносит каталог в PostgreSQL.
type SeedUseCase struct {
	categoryRepo CategoryRepository
	brandRepo    BrandRepository
	productRepo  ProductRepository
	serviceRepo  ServiceRepository
	dbPool       transaction.Transactional
	cacheRepo    CatalogCache // nil, если кэш отключён
	logger       logger.Logger
}

func NewSeedUC(
	categoryRepo CategoryRepository,
	brandRepo BrandRepository,
	productRepo ProductRepository,
	serviceRepo ServiceRepository,
	dbPool transaction.Transactional,
	cacheRepo CatalogCache,
	logger logger.Logger,
) *SeedUseCase {
	return &SeedUseCase{
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		dbPool:       dbPool,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// SeedCatalog идемпотентно записывает каталог в одной транзакции и сбрасывает кэш каталога.
func (s *SeedUseCase) SeedCatalog(ctx context.Context, catalog *domain.Catalog) (err error) {
	const op = "SeedUseCase.SeedCatalog"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, s.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции
	defer func() {
		if err != nil && tx.IsActive() {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Warnf("Failed to rollback seed transaction: %v", e.Wrap(op, rbErr))
			}
		}
	}()
	ctx = tr.WithTx(ctx, tx.Transaction())

	categoryIDs := make(map[string]int64, len(catalog.Categories))
	for i := range catalog.Categories {
		id, err := s.categoryRepo.Upsert(ctx, &catalog.Categories[i])
		if err != nil {
			return e.Wrap(op, err)
		}
		categoryIDs[catalog.Categories[i].Name] = id
	}

	brandIDs := make(map[string]int64, len(catalog.Brands))
	for i := range catalog.Brands {
		id, err := s.brandRepo.Upsert(ctx, &catalog.Brands[i])
		if err != nil {
			return e.Wrap(op, err)
		}
		brandIDs[catalog.Brands[i].Name] = id
	}

	for i := range catalog.Products {
		p := &catalog.Products[i]

		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			return e.Wrap(op, e.ErrInvalidCatalog)
		}

		brandID, ok := brandIDs[p.Brand]
		if !ok {
			brandID, err = s.brandRepo.Upsert(ctx, &domain.Brand{Name: p.Brand})
			if err != nil {
				return e.Wrap(op, err)
			}
			brandIDs[p.Brand] = brandID
		}

		if err = s.productRepo.Upsert(ctx, p, categoryID, brandID); err != nil {
			return e.Wrap(op, err)
		}
	}

	for i := range catalog.Services {
		if err = s.serviceRepo.Upsert(ctx, &catalog.Services[i]); err != nil {
			return e.Wrap(op, err)
		}
	}

	// Коммит изменений в бд
	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	// Удаление из кэша старого снимка каталога
	if s.cacheRepo != nil {
		if err := s.cacheRepo.DeleteCatalog(ctx); err != nil {
			s.logger.Warnf("Failed to invalidate catalog cache: %v", e.Wrap(op, err))
		}
	}

	s.logger.Infof("catalog seeded: %d categories, %d brands, %d products, %d services",
		len(catalog.Categories), len(brandIDs), len(catalog.Products), len(catalog.Services))

	return nil
}
