package static

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// CatalogRepo отдаёт каталог из YAML: встроенного в бинарь или из файла.
type CatalogRepo struct {
	path string
}

// NewCatalogRepo создаёт источник каталога. Пустой path означает встроенный каталог.
func NewCatalogRepo(path string) *CatalogRepo {
	return &CatalogRepo{path: path}
}

// LoadCatalog читает и проверяет каталог.
func (r *CatalogRepo) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	data := embeddedCatalog
	if r.path != "" {
		var err error
		data, err = os.ReadFile(r.path)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return catalog, nil
}

// ParseCatalog разбирает YAML-каталог. Неизвестные поля считаются ошибкой.
func ParseCatalog(data []byte) (*domain.Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", e.ErrInvalidCatalog, err)
	}

	if err := validate(&file); err != nil {
		return nil, err
	}

	return toDomain(&file), nil
}

// validate проверяет уникальность идентификаторов и корректность цен.
func validate(file *catalogFile) error {
	categories := make(map[string]struct{}, len(file.Categories))
	for _, c := range file.Categories {
		if c.Name == "" {
			return e.Wrap("category without name", e.ErrInvalidCatalog)
		}
		categories[c.Name] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(file.Products))
	for _, p := range file.Products {
		if _, ok := seen[p.ID]; ok {
			return e.Wrap(fmt.Sprintf("duplicate product id %d", p.ID), e.ErrInvalidCatalog)
		}
		seen[p.ID] = struct{}{}

		if p.Name == "" {
			return e.Wrap(fmt.Sprintf("product %d has no name", p.ID), e.ErrInvalidCatalog)
		}
		if p.Price < 0 {
			return e.Wrap(fmt.Sprintf("product %d has negative price", p.ID), e.ErrInvalidCatalog)
		}
		if _, ok := categories[p.Category]; !ok {
			return e.Wrap(fmt.Sprintf("product %d has unknown category %q", p.ID, p.Category), e.ErrInvalidCatalog)
		}
	}

	for _, s := range file.Services {
		switch domain.ServiceCategory(s.Category) {
		case domain.ServiceDelivery, domain.ServiceInstallation, domain.ServiceSetup:
		default:
			return e.Wrap(fmt.Sprintf("service %d has unknown category %q", s.ID, s.Category), e.ErrInvalidCatalog)
		}
		if s.Price < 0 {
			return e.Wrap(fmt.Sprintf("service %d has negative price", s.ID), e.ErrInvalidCatalog)
		}
	}

	return nil
}

func toDomain(file *catalogFile) *domain.Catalog {
	c := &domain.Catalog{
		Products:   make([]domain.Product, 0, len(file.Products)),
		Categories: make([]domain.Category, 0, len(file.Categories)),
		Brands:     make([]domain.Brand, 0, len(file.Brands)),
		Services:   make([]domain.Service, 0, len(file.Services)),
	}

	for _, m := range file.Categories {
		c.Categories = append(c.Categories, *domain.NewCategory(m.Name, m.Slug, m.Icon))
	}

	for _, name := range file.Brands {
		c.Brands = append(c.Brands, domain.Brand{Name: name})
	}

	for _, m := range file.Products {
		p := domain.NewProduct(m.ID, m.Name, m.Price, m.Category, m.Brand)
		p.Rating = m.Rating
		p.Image = m.Image
		p.Specs = m.Specs
		c.Products = append(c.Products, *p)
	}

	for _, m := range file.Services {
		c.Services = append(c.Services, domain.Service{
			ID:            m.ID,
			Name:          m.Name,
			Description:   m.Description,
			Price:         m.Price,
			Category:      domain.ServiceCategory(m.Category),
			DurationHours: m.DurationHours,
		})
	}

	return c
}
