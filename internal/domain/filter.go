package domain

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// PriceRange — включающий диапазон цен [Min, Max].
type PriceRange struct {
	Min int64
	Max int64
}

// FullPriceRange возвращает диапазон, не ограничивающий ни один товар.
func FullPriceRange() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

// Contains сообщает, попадает ли цена в диапазон включительно.
func (r PriceRange) Contains(price int64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterState — состояние фильтров витрины.
// Пустые Categories и Brands означают отсутствие ограничения.
type FilterState struct {
	Query      string
	Categories []string
	Brands     []string
	Price      PriceRange
}

// DefaultFilterState возвращает состояние, при котором виден весь каталог.
func DefaultFilterState() FilterState {
	return FilterState{Price: FullPriceRange()}
}

// FilterProducts возвращает товары каталога, удовлетворяющие всем условиям состояния,
// сохраняя порядок каталога.
func FilterProducts(products []Product, state FilterState) []Product {
	query := strings.ToLower(state.Query)
	categories := toSet(state.Categories)
	brands := toSet(state.Brands)

	res := make([]Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if len(categories) > 0 {
			if _, ok := categories[p.Category]; !ok {
				continue
			}
		}
		if len(brands) > 0 {
			if _, ok := brands[p.Brand]; !ok {
				continue
			}
		}
		if !state.Price.Contains(p.Price) {
			continue
		}
		res = append(res, p)
	}

	return res
}

// SetQuery меняет строку поиска.
func (s FilterState) SetQuery(query string) FilterState {
	s.Query = query
	return s
}

// ToggleCategory добавляет категорию в выбор или убирает её, если она уже выбрана.
func (s FilterState) ToggleCategory(name string) FilterState {
	s.Categories = toggle(s.Categories, name)
	return s
}

// ToggleBrand добавляет бренд в выбор или убирает его, если он уже выбран.
func (s FilterState) ToggleBrand(name string) FilterState {
	s.Brands = toggle(s.Brands, name)
	return s
}

// SelectOnlyCategory оставляет в выборе единственную категорию.
func (s FilterState) SelectOnlyCategory(name string) FilterState {
	s.Categories = []string{name}
	return s
}

// SetPriceRange меняет диапазон цен.
func (s FilterState) SetPriceRange(r PriceRange) FilterState {
	s.Price = r
	return s
}

// ResetFilters очищает выбор категорий и брендов и возвращает полный диапазон цен.
// Строка поиска сохраняется.
func (s FilterState) ResetFilters() FilterState {
	s.Categories = nil
	s.Brands = nil
	s.Price = FullPriceRange()
	return s
}

// SortKey — ключ сортировки выдачи.
type SortKey string

const (
	SortDefault    SortKey = ""
	SortPriceAsc   SortKey = "price_asc"
	SortPriceDesc  SortKey = "price_desc"
	SortRatingDesc SortKey = "rating_desc"
	SortNameAsc    SortKey = "name_asc"
)

// ParseSortKey проверяет ключ сортировки. "default" равнозначен пустому ключу.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortRatingDesc, SortNameAsc:
		return k, true
	case "default":
		return SortDefault, true
	default:
		return SortDefault, false
	}
}

// SortProducts возвращает отсортированную копию. Сортировка устойчивая,
// при равных ключах сохраняется порядок каталога.
func SortProducts(products []Product, key SortKey) []Product {
	res := slices.Clone(products)

	switch key {
	case SortPriceAsc:
		slices.SortStableFunc(res, func(a, b Product) int { return cmp.Compare(a.Price, b.Price) })
	case SortPriceDesc:
		slices.SortStableFunc(res, func(a, b Product) int { return cmp.Compare(b.Price, a.Price) })
	case SortRatingDesc:
		slices.SortStableFunc(res, func(a, b Product) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortNameAsc:
		slices.SortStableFunc(res, func(a, b Product) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
	}

	return res
}

// Page описывает страницу выдачи.
type Page struct {
	Number int
	Limit  int
	Total  int
	Pages  int
}

// Paginate возвращает срез items для страницы number (с 1) размером limit.
// Страница за пределами выдачи пуста.
func Paginate[T any](items []T, number, limit int) ([]T, Page) {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	page := Page{
		Number: number,
		Limit:  limit,
		Total:  total,
		Pages:  pages,
	}

	// сравнение номеров страниц до умножения: (number-1)*limit переполняется на больших number
	if number > pages {
		return []T{}, page
	}

	offset := (number - 1) * limit

	end := min(offset+limit, total)
	return items[offset:end], page
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func toggle(values []string, v string) []string {
	if slices.Contains(values, v) {
		return slices.DeleteFunc(slices.Clone(values), func(x string) bool { return x == v })
	}

	res := make([]string, 0, len(values)+1)
	res = append(res, values...)
	return append(res, v)
}
