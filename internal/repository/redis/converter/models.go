package converter

import "time"

// CatalogRedisModel — снимок каталога в кэше.
type CatalogRedisModel struct {
	Version    int                  `json:"version"`
	CachedAt   time.Time            `json:"cached_at"`
	Products   []ProductRedisModel  `json:"products"`
	Categories []CategoryRedisModel `json:"categories"`
	Brands     []string             `json:"brands"`
	Services   []ServiceRedisModel  `json:"services"`
}

type ProductRedisModel struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Rating   float64  `json:"rating"`
	Image    string   `json:"image,omitempty"`
	Specs    []string `json:"specs,omitempty"`
}

type CategoryRedisModel struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
	Icon string `json:"icon,omitempty"`
}

type ServiceRedisModel struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Price         int64  `json:"price"`
	Category      string `json:"category"`
	DurationHours int    `json:"duration_hours"`
}
