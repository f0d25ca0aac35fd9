package minio

import (
	"context"
	"sync"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

const defaultResolveLimit = 8

// MinioInfrastructure подменяет ключи объектов в карточках товаров подписанными ссылками MinIO.
type MinioInfrastructure struct {
	minioRepo    usecase.ImageRepository
	bucket       string
	logger       logger.Logger
	resolveLimit int
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	limit := cfg.ResolveLimit
	if limit <= 0 {
		limit = defaultResolveLimit
	}

	return &MinioInfrastructure{
		minioRepo:    minioRepo,
		bucket:       cfg.BucketName,
		logger:       logger,
		resolveLimit: limit,
	}
}

// ResolveImages возвращает копию products с подписанными ссылками на изображения.
// Ссылки, не являющиеся ключами объектов, не меняются. При ошибке подписи
// остаётся исходная ссылка. Входной срез не изменяется.
func (m *MinioInfrastructure) ResolveImages(ctx context.Context, products []domain.Product) []domain.Product {
	res := make([]domain.Product, len(products))
	copy(res, products)

	sem := make(chan struct{}, m.resolveLimit)
	var wg sync.WaitGroup

	for i := range res {
		if !domain.IsObjectKey(res[i].Image) {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			u, err := m.minioRepo.PresignedURL(ctx, domain.NewImage(m.bucket, res[i].Image))
			if err != nil {
				m.logger.Warnf("Failed to sign image %q for product %d: %v", res[i].Image, res[i].ID, err)
				return
			}
			res[i].Image = u
		}()
	}

	wg.Wait()
	return res
}
