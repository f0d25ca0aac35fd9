package domain

// Category описывает категорию товаров
type Category struct {
	Name string
	Slug string
	Icon string
}

func NewCategory(name, slug, icon string) *Category {
	return &Category{
		Name: name,
		Slug: slug,
		Icon: icon,
	}
}
