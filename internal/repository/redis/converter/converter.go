package converter

import (
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
)

// CatalogVersion — версия формата снимка. Снимки другой версии считаются промахом.
const CatalogVersion = 1

// CatalogConverter преобразует каталог между domain и моделью Redis.
type CatalogConverter interface {
	ToRedisModel(entity *domain.Catalog) *CatalogRedisModel
	ToEntity(model *CatalogRedisModel) *domain.Catalog
}

type CatalogConverterImpl struct {
	now func() time.Time
}

func NewCatalogConverterImpl() *CatalogConverterImpl {
	return &CatalogConverterImpl{now: time.Now}
}

func (c *CatalogConverterImpl) ToRedisModel(entity *domain.Catalog) *CatalogRedisModel {
	model := &CatalogRedisModel{
		Version:    CatalogVersion,
		CachedAt:   c.now().UTC(),
		Products:   make([]ProductRedisModel, 0, len(entity.Products)),
		Categories: make([]CategoryRedisModel, 0, len(entity.Categories)),
		Brands:     make([]string, 0, len(entity.Brands)),
		Services:   make([]ServiceRedisModel, 0, len(entity.Services)),
	}

	for _, p := range entity.Products {
		model.Products = append(model.Products, ProductRedisModel{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
			Image:    p.Image,
			Specs:    p.Specs,
		})
	}
	for _, cat := range entity.Categories {
		model.Categories = append(model.Categories, CategoryRedisModel{Name: cat.Name, Slug: cat.Slug, Icon: cat.Icon})
	}
	for _, b := range entity.Brands {
		model.Brands = append(model.Brands, b.Name)
	}
	for _, s := range entity.Services {
		model.Services = append(model.Services, ServiceRedisModel{
			ID:            s.ID,
			Name:          s.Name,
			Description:   s.Description,
			Price:         s.Price,
			Category:      string(s.Category),
			DurationHours: s.DurationHours,
		})
	}

	return model
}

func (c *CatalogConverterImpl) ToEntity(model *CatalogRedisModel) *domain.Catalog {
	entity := &domain.Catalog{
		Products:   make([]domain.Product, 0, len(model.Products)),
		Categories: make([]domain.Category, 0, len(model.Categories)),
		Brands:     make([]domain.Brand, 0, len(model.Brands)),
		Services:   make([]domain.Service, 0, len(model.Services)),
	}

	for _, p := range model.Products {
		entity.Products = append(entity.Products, domain.Product{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
			Image:    p.Image,
			Specs:    p.Specs,
		})
	}
	for _, cat := range model.Categories {
		entity.Categories = append(entity.Categories, *domain.NewCategory(cat.Name, cat.Slug, cat.Icon))
	}
	for _, b := range model.Brands {
		entity.Brands = append(entity.Brands, domain.Brand{Name: b})
	}
	for _, s := range model.Services {
		entity.Services = append(entity.Services, domain.Service{
			ID:            s.ID,
			Name:          s.Name,
			Description:   s.Description,
			Price:         s.Price,
			Category:      domain.ServiceCategory(s.Category),
			DurationHours: s.DurationHours,
		})
	}

	return entity
}
