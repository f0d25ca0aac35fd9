package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildMetadata(t *testing.T) {
	md := BuildMetadata(testCatalog())

	wantCategories := []CategoryInfo{
		{Category: Category{Name: "Автоматика для ворот", Slug: "gate-automation", Icon: "DoorOpen"}, Count: 2},
		{Category: Category{Name: "Видеокамеры", Slug: "videocameras", Icon: "Camera"}, Count: 2},
		{Category: Category{Name: "Комплектующие", Slug: "accessories", Icon: "Wrench"}, Count: 0},
		{Category: Category{Name: "Пожарная сигнализация", Slug: "fire-alarm", Icon: "Flame"}, Count: 1},
		{Category: Category{Name: "Шлагбаумы", Slug: "barriers", Icon: "Construction"}, Count: 1},
	}
	if diff := cmp.Diff(wantCategories, md.Categories); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}

	wantBrands := []BrandInfo{
		{Name: "BFT", Count: 1},
		{Name: "Bolid", Count: 1},
		{Name: "CAME", Count: 1},
		{Name: "Dahua", Count: 1},
		{Name: "Hikvision", Count: 1},
		{Name: "Nice", Count: 1},
	}
	if diff := cmp.Diff(wantBrands, md.Brands); diff != "" {
		t.Errorf("brands mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, PriceRange{Min: 8500, Max: 89500}, md.PriceRange)
}

func TestBuildMetadata_EmptyCatalog(t *testing.T) {
	md := BuildMetadata(Catalog{})

	assert.Empty(t, md.Categories)
	assert.Empty(t, md.Brands)
	assert.Equal(t, PriceRange{}, md.PriceRange)
}
