package domain

// Product описывает товар каталога. После загрузки каталога не изменяется.
type Product struct {
	ID       int64
	Name     string
	Price    int64 // Цена хранится в целых рублях
	Category string
	Brand    string
	Rating   float64 // Только для отображения, в расчётах не участвует
	Image    string
	Specs    []string
}

func NewProduct(id int64, name string, price int64, category, brand string) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
		Brand:    brand,
	}
}

// Brand описывает производителя.
type Brand struct {
	Name string
}

// Catalog — неизменяемый снимок каталога: товары, категории, бренды и услуги.
type Catalog struct {
	Products   []Product
	Categories []Category
	Brands     []Brand
	Services   []Service
}

// ProductByID ищет товар по идентификатору.
func (c *Catalog) ProductByID(id int64) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
