package converter

import "time"

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Slug      string     `db:"slug"`
	Icon      string     `db:"icon"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// BrandModel представляет запись таблицы brands в PostgreSQL.
type BrandModel struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// ProductModel представляет запись таблицы products вместе с именами категории и бренда.
type ProductModel struct {
	ID           int64    `db:"id"`
	Name         string   `db:"name"`
	Price        int64    `db:"price"`
	CategoryName string   `db:"category_name"`
	BrandName    string   `db:"brand_name"`
	Rating       float64  `db:"rating"`
	Image        string   `db:"image"`
	Specs        []string `db:"specs"`
}

// ServiceModel представляет запись таблицы services в PostgreSQL.
type ServiceModel struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	Price         int64  `db:"price"`
	Category      string `db:"category"`
	DurationHours int    `db:"duration_hours"`
}
