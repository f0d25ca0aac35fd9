package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterProducts(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name  string
		state FilterState
		want  []int64
	}{
		{
			name:  "default state keeps catalog",
			state: DefaultFilterState(),
			want:  []int64{1, 2, 3, 4, 5, 6},
		},
		{
			name:  "query is case-insensitive substring",
			state: DefaultFilterState().SetQuery("КАМЕРА"),
			want:  []int64{1, 5},
		},
		{
			name:  "category set",
			state: DefaultFilterState().ToggleCategory("Видеокамеры"),
			want:  []int64{1, 5},
		},
		{
			name:  "brand set",
			state: DefaultFilterState().ToggleBrand("CAME").ToggleBrand("BFT"),
			want:  []int64{2, 6},
		},
		{
			name:  "price range",
			state: DefaultFilterState().SetPriceRange(PriceRange{Min: 10000, Max: 30000}),
			want:  []int64{1, 2, 6},
		},
		{
			name:  "price bounds are inclusive",
			state: DefaultFilterState().SetPriceRange(PriceRange{Min: 12500, Max: 12500}),
			want:  []int64{1},
		},
		{
			name: "all conditions combined",
			state: DefaultFilterState().
				SelectOnlyCategory("Автоматика для ворот").
				SetPriceRange(PriceRange{Min: 0, Max: 20000}),
			want: []int64{6},
		},
		{
			name:  "no matches",
			state: DefaultFilterState().SetQuery("домофон"),
			want:  []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterProducts(products, tt.state)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterProducts() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterProducts_DoesNotMutateCatalog(t *testing.T) {
	products := testProducts()
	before := testProducts()

	_ = FilterProducts(products, DefaultFilterState().SetQuery("привод"))

	assert.Empty(t, cmp.Diff(before, products))
}

func TestFilterState_Reducers(t *testing.T) {
	t.Run("toggle twice restores empty set", func(t *testing.T) {
		s := DefaultFilterState().ToggleCategory("Шлагбаумы").ToggleCategory("Шлагбаумы")
		assert.Empty(t, s.Categories)
	})

	t.Run("toggle does not alias previous state", func(t *testing.T) {
		s1 := DefaultFilterState().ToggleBrand("Nice").ToggleBrand("Dahua")
		s2 := s1.ToggleBrand("Nice")

		assert.Equal(t, []string{"Nice", "Dahua"}, s1.Brands)
		assert.Equal(t, []string{"Dahua"}, s2.Brands)
	})

	t.Run("select only category replaces selection", func(t *testing.T) {
		s := DefaultFilterState().ToggleCategory("Видеокамеры").ToggleCategory("Шлагбаумы")
		s = s.SelectOnlyCategory("Комплектующие")
		assert.Equal(t, []string{"Комплектующие"}, s.Categories)
	})

	t.Run("reset clears sets and price but keeps query", func(t *testing.T) {
		s := DefaultFilterState().
			SetQuery("камера").
			ToggleCategory("Видеокамеры").
			ToggleBrand("Dahua").
			SetPriceRange(PriceRange{Min: 1, Max: 2})

		s = s.ResetFilters()

		assert.Equal(t, "камера", s.Query)
		assert.Empty(t, s.Categories)
		assert.Empty(t, s.Brands)
		assert.Equal(t, FullPriceRange(), s.Price)
		assert.Equal(t, []int64{1, 5}, ids(FilterProducts(testProducts(), s)))
	})
}

func TestParseSortKey(t *testing.T) {
	for _, in := range []string{"", "default", "price_asc", "PRICE_DESC", " rating_desc ", "name_asc"} {
		_, ok := ParseSortKey(in)
		assert.True(t, ok, in)
	}

	_, ok := ParseSortKey("popularity")
	assert.False(t, ok)
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int64
	}{
		{key: SortDefault, want: []int64{1, 2, 3, 4, 5, 6}},
		{key: SortPriceAsc, want: []int64{4, 1, 6, 2, 3, 5}},
		{key: SortPriceDesc, want: []int64{5, 3, 2, 6, 1, 4}},
		{key: SortRatingDesc, want: []int64{2, 5, 1, 3, 4, 6}},
		{key: SortNameAsc, want: []int64{1, 5, 4, 2, 6, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			products := testProducts()
			got := SortProducts(products, tt.key)

			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, ids(products))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got, page := Paginate(items, 2, 2)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, Page{Number: 2, Limit: 2, Total: 5, Pages: 3}, page)

	got, page = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 3, page.Pages)

	got, page = Paginate(items, 4, 2)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 5, page.Total)

	got, page = Paginate([]int{}, 1, 24)
	assert.Empty(t, got)
	assert.Equal(t, 0, page.Pages)

	got, page = Paginate(items, 0, 0)
	assert.Equal(t, []int{1}, got)
	assert.Equal(t, Page{Number: 1, Limit: 1, Total: 5, Pages: 5}, page)

	got, page = Paginate(items, math.MaxInt, 24)
	require.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, Page{Number: math.MaxInt, Limit: 24, Total: 5, Pages: 1}, page)

	got, _ = Paginate(items, math.MaxInt/2+1, 2)
	assert.Empty(t, got)

	got, page = Paginate(items, 1, math.MaxInt)
	assert.Equal(t, items, got)
	assert.Equal(t, 1, page.Pages)
}
