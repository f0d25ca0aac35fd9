package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

// catalogSnapshot — загруженный каталог и посчитанные по нему метаданные.
type catalogSnapshot struct {
	catalog  *domain.Catalog
	metadata domain.Metadata
}

// ProductUseCase отвечает за витрину: снимок каталога, фильтрацию, метаданные и расчёт стоимости.
type ProductUseCase struct {
	source      CatalogSource
	cacheRepo   CatalogCache // nil, если кэш отключён
	imagesInfra ImagesInfra  // nil, если хранилище изображений отключено
	pricing     domain.Pricing
	logger      logger.Logger
	snapshot    atomic.Pointer[catalogSnapshot]
}

func NewProductUC(
	source CatalogSource,
	cacheRepo CatalogCache,
	imagesInfra ImagesInfra,
	pricing domain.Pricing,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		source:      source,
		cacheRepo:   cacheRepo,
		imagesInfra: imagesInfra,
		pricing:     pricing,
		logger:      logger,
	}
}

// LoadCatalog загружает снимок каталога: сначала из кэша, при промахе из источника.
// Загруженный из источника каталог кладётся в кэш в фоне.
func (p *ProductUseCase) LoadCatalog(ctx context.Context) error {
	const op = "ProductUseCase.LoadCatalog"

	if p.cacheRepo != nil {
		catalog, err := p.cacheRepo.GetCatalog(ctx)
		switch {
		case err == nil:
			p.store(catalog)
			p.logger.Infof("catalog loaded from cache: %d products", len(catalog.Products))
			return nil
		case errors.Is(err, e.ErrCacheMiss):
			p.logger.Debugf("catalog cache miss")
		default:
			p.logger.Warnf("Failed to read catalog from cache: %v", e.Wrap(op, err))
		}
	}

	catalog, err := p.source.LoadCatalog(ctx)
	if err != nil {
		return e.Wrap(op, errors.Join(e.ErrCatalogUnavailable, err))
	}
	p.store(catalog)
	p.logger.Infof("catalog loaded from source: %d products", len(catalog.Products))

	if p.cacheRepo != nil {
		// Фоновое добавление каталога в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			if err := p.cacheRepo.SetCatalog(bgCtx, catalog); err != nil {
				p.logger.Warnf("Failed to cache catalog in background: %v", e.Wrap(op, err))
			}
		}()
	}

	return nil
}

// Catalog возвращает текущий снимок каталога.
func (p *ProductUseCase) Catalog() (*domain.Catalog, error) {
	s := p.snapshot.Load()
	if s == nil {
		return nil, e.ErrCatalogUnavailable
	}

	return s.catalog, nil
}

// ListProducts фильтрует, сортирует и разбивает каталог на страницы.
// Фильтр без ограничений строится через domain.DefaultFilterState.
func (p *ProductUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "ProductUseCase.ListProducts"

	if err := validatePriceRange(req.Filter.Price); err != nil {
		return nil, e.Wrap(op, err)
	}

	page, limit, err := normalizePage(req.Page, req.Limit, DefaultPageLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, err := p.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := domain.FilterProducts(catalog.Products, req.Filter)
	sorted := domain.SortProducts(filtered, req.Sort)
	items, pageInfo := domain.Paginate(sorted, page, limit)

	return &ListProductsRes{
		Products: p.resolveImages(ctx, items),
		Page:     pageInfo,
	}, nil
}

// GetProduct возвращает товар по идентификатору.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	catalog, err := p.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, ok := catalog.ProductByID(id)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	resolved := p.resolveImages(ctx, []domain.Product{product})
	return &resolved[0], nil
}

// GetProductsInfo возвращает информацию о продуктах по их идентификаторам,
// сохраняя порядок запроса. Ненайденные идентификаторы перечисляются отдельно.
func (p *ProductUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "ProductUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return NewGetProductsRes([]domain.Product{}, []int64{}), nil
	}

	catalog, err := p.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]domain.Product, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := catalog.ProductByID(id); ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(p.resolveImages(ctx, result), notFoundProducts), nil
}

// GetMetadata возвращает категории, бренды и диапазон цен каталога.
func (p *ProductUseCase) GetMetadata(_ context.Context) (*domain.Metadata, error) {
	s := p.snapshot.Load()
	if s == nil {
		return nil, e.Wrap("ProductUseCase.GetMetadata", e.ErrCatalogUnavailable)
	}

	md := s.metadata
	return &md, nil
}

// ListServices возвращает страницу услуг по категории и строке поиска.
func (p *ProductUseCase) ListServices(_ context.Context, req *ListServicesReq) (*ListServicesRes, error) {
	const op = "ProductUseCase.ListServices"

	switch req.Category {
	case "", domain.ServiceDelivery, domain.ServiceInstallation, domain.ServiceSetup:
	default:
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	page, limit, err := normalizePage(req.Page, req.Limit, DefaultServicesLimit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	catalog, err := p.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := domain.FilterServices(catalog.Services, req.Category, req.Search)
	items, pageInfo := domain.Paginate(filtered, page, limit)

	return &ListServicesRes{Services: items, Page: pageInfo}, nil
}

// QuoteLines собирает корзину из позиций запроса и рассчитывает её стоимость.
// Повторяющиеся товары объединяются, дополнительные услуги складываются по "или".
func (p *ProductUseCase) QuoteLines(_ context.Context, lines []QuoteLineReq) (*domain.Quote, error) {
	const op = "ProductUseCase.QuoteLines"

	catalog, err := p.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var cart domain.Cart
	for _, l := range lines {
		if l.Quantity < 1 || l.Quantity > MaxLineQuantity {
			return nil, e.Wrap(op, e.ErrInvalidQuantity)
		}

		product, ok := catalog.ProductByID(l.ProductID)
		if !ok {
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}

		for range l.Quantity {
			cart = domain.AddToCart(cart, product)
		}
		if l.Delivery {
			cart, _ = domain.SetCartAddOn(cart, l.ProductID, domain.AddOnDelivery, true)
		}
		if l.Installation {
			cart, _ = domain.SetCartAddOn(cart, l.ProductID, domain.AddOnInstallation, true)
		}
	}

	quote := p.pricing.Quote(cart)
	return &quote, nil
}

func (p *ProductUseCase) store(catalog *domain.Catalog) {
	p.snapshot.Store(&catalogSnapshot{
		catalog:  catalog,
		metadata: domain.BuildMetadata(*catalog),
	})
}

func (p *ProductUseCase) resolveImages(ctx context.Context, products []domain.Product) []domain.Product {
	if p.imagesInfra == nil || len(products) == 0 {
		return products
	}

	return p.imagesInfra.ResolveImages(ctx, products)
}

// normalizePage подставляет значения по умолчанию и ограничивает размер страницы.
func normalizePage(page, limit, defaultLimit int) (int, int, error) {
	if page < 0 || limit < 0 {
		return 0, 0, e.ErrInvalidPagination
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultLimit
	}

	return page, min(limit, MaxPageLimit), nil
}

func validatePriceRange(r domain.PriceRange) error {
	if r.Min < 0 || r.Max < 0 {
		return e.ErrInvalidPrice
	}
	if r.Min > r.Max {
		return e.ErrInvalidPriceRange
	}

	return nil
}
