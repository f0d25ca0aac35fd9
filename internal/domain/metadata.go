package domain

import (
	"cmp"
	"slices"
)

// CategoryInfo — категория с количеством товаров в ней.
type CategoryInfo struct {
	Category
	Count int
}

// BrandInfo — бренд с количеством товаров.
type BrandInfo struct {
	Name  string
	Count int
}

// Metadata — справочные данные для панели фильтров.
type Metadata struct {
	Categories []CategoryInfo
	Brands     []BrandInfo
	PriceRange PriceRange
}

// BuildMetadata считает категории, бренды и диапазон цен по снимку каталога.
// Категории выводятся все, бренды — только с товарами. Обе выборки упорядочены по имени.
func BuildMetadata(c Catalog) Metadata {
	catCount := make(map[string]int, len(c.Categories))
	brandCount := make(map[string]int, len(c.Brands))
	for _, p := range c.Products {
		catCount[p.Category]++
		brandCount[p.Brand]++
	}

	categories := make([]CategoryInfo, 0, len(c.Categories))
	for _, cat := range c.Categories {
		categories = append(categories, CategoryInfo{Category: cat, Count: catCount[cat.Name]})
	}
	slices.SortStableFunc(categories, func(a, b CategoryInfo) int { return cmp.Compare(a.Name, b.Name) })

	brands := make([]BrandInfo, 0, len(c.Brands))
	for _, b := range c.Brands {
		if n := brandCount[b.Name]; n > 0 {
			brands = append(brands, BrandInfo{Name: b.Name, Count: n})
		}
	}
	slices.SortStableFunc(brands, func(a, b BrandInfo) int { return cmp.Compare(a.Name, b.Name) })

	return Metadata{
		Categories: categories,
		Brands:     brands,
		PriceRange: priceRange(c.Products),
	}
}

func priceRange(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{}
	}

	r := PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		r.Min = min(r.Min, p.Price)
		r.Max = max(r.Max, p.Price)
	}
	return r
}
