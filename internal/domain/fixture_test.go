package domain

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "IP-камера Hikvision DS-2CD2143G2-I 4MP", Price: 12500, Category: "Видеокамеры", Brand: "Hikvision", Rating: 4.8},
		{ID: 2, Name: "Привод для откатных ворот CAME BX-243", Price: 28900, Category: "Автоматика для ворот", Brand: "CAME", Rating: 4.9},
		{ID: 3, Name: "Шлагбаум автоматический NICE WideM", Price: 42000, Category: "Шлагбаумы", Brand: "Nice", Rating: 4.7},
		{ID: 4, Name: "Прибор пожарный Болид С2000-КДЛ", Price: 8500, Category: "Пожарная сигнализация", Brand: "Bolid", Rating: 4.6},
		{ID: 5, Name: "PTZ-камера Dahua SD59432XA-HNR", Price: 89500, Category: "Видеокамеры", Brand: "Dahua", Rating: 4.9},
		{ID: 6, Name: "Привод для распашных ворот BFT VIRGO", Price: 15600, Category: "Автоматика для ворот", Brand: "BFT", Rating: 4.5},
	}
}

func testCatalog() Catalog {
	return Catalog{
		Products: testProducts(),
		Categories: []Category{
			{Name: "Видеокамеры", Slug: "videocameras", Icon: "Camera"},
			{Name: "Автоматика для ворот", Slug: "gate-automation", Icon: "DoorOpen"},
			{Name: "Шлагбаумы", Slug: "barriers", Icon: "Construction"},
			{Name: "Пожарная сигнализация", Slug: "fire-alarm", Icon: "Flame"},
			{Name: "Комплектующие", Slug: "accessories", Icon: "Wrench"},
		},
		Brands: []Brand{
			{Name: "Hikvision"}, {Name: "Dahua"}, {Name: "Axis"}, {Name: "Bolid"},
			{Name: "CAME"}, {Name: "Nice"}, {Name: "BFT"}, {Name: "Bosch"},
		},
		Services: []Service{
			{ID: 1, Name: "Доставка по городу", Price: 500, Category: ServiceDelivery, DurationHours: 1},
			{ID: 2, Name: "Установка видеокамеры", Price: 2000, Category: ServiceInstallation, DurationHours: 4},
			{ID: 3, Name: "Настройка видеонаблюдения", Price: 1500, Category: ServiceSetup, DurationHours: 2},
			{ID: 4, Name: "Монтаж видеонаблюдения", Price: 3000, Category: ServiceInstallation, DurationHours: 6},
			{ID: 5, Name: "Доставка по России", Price: 3500, Category: ServiceDelivery, DurationHours: 1},
		},
	}
}

func ids(products []Product) []int64 {
	res := make([]int64, 0, len(products))
	for _, p := range products {
		res = append(res, p.ID)
	}
	return res
}
