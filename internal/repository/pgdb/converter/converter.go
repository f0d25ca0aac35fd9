package converter

import "github.com/DRSN-tech/go-storefront/internal/domain"

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
}

// ServiceConverter преобразует сущности Service между domain и моделью PostgreSQL.
type ServiceConverter interface {
	ToEntity(model *ServiceModel) *domain.Service
}

type CategoryConverterImpl struct{}

func (CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}
	return domain.NewCategory(model.Name, model.Slug, model.Icon)
}

type ProductConverterImpl struct{}

func (ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	p := domain.NewProduct(model.ID, model.Name, model.Price, model.CategoryName, model.BrandName)
	p.Rating = model.Rating
	p.Image = model.Image
	if len(model.Specs) > 0 {
		p.Specs = append([]string(nil), model.Specs...)
	}
	return p
}

type ServiceConverterImpl struct{}

func (ServiceConverterImpl) ToEntity(model *ServiceModel) *domain.Service {
	if model == nil {
		return nil
	}

	return &domain.Service{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		Price:         model.Price,
		Category:      domain.ServiceCategory(model.Category),
		DurationHours: model.DurationHours,
	}
}
