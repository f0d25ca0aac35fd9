package static

// catalogFile — структура YAML-файла каталога.
type catalogFile struct {
	Categories []categoryModel `yaml:"categories"`
	Brands     []string        `yaml:"brands"`
	Products   []productModel  `yaml:"products"`
	Services   []serviceModel  `yaml:"services"`
}

type categoryModel struct {
	Name string `yaml:"name"`
	Slug string `yaml:"slug"`
	Icon string `yaml:"icon"`
}

type productModel struct {
	ID       int64    `yaml:"id"`
	Name     string   `yaml:"name"`
	Price    int64    `yaml:"price"`
	Category string   `yaml:"category"`
	Brand    string   `yaml:"brand"`
	Image    string   `yaml:"image"`
	Rating   float64  `yaml:"rating"`
	Specs    []string `yaml:"specs"`
}

type serviceModel struct {
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Price         int64  `yaml:"price"`
	Category      string `yaml:"category"`
	DurationHours int    `yaml:"duration_hours"`
}
