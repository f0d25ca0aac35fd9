package domain

import (
	"cmp"
	"slices"
	"strings"
)

// ServiceCategory — вид услуги.
type ServiceCategory string

const (
	ServiceDelivery     ServiceCategory = "delivery"
	ServiceInstallation ServiceCategory = "installation"
	ServiceSetup        ServiceCategory = "setup"
)

// Service описывает услугу (доставка, монтаж, настройка).
type Service struct {
	ID            int64
	Name          string
	Description   string
	Price         int64
	Category      ServiceCategory
	DurationHours int
}

// FilterServices отбирает услуги по категории (пустая — любая) и подстроке названия
// без учёта регистра. Результат упорядочен по категории, затем по цене.
func FilterServices(services []Service, category ServiceCategory, search string) []Service {
	search = strings.ToLower(search)

	res := make([]Service, 0, len(services))
	for _, s := range services {
		if category != "" && s.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(s.Name), search) {
			continue
		}
		res = append(res, s)
	}

	slices.SortStableFunc(res, func(a, b Service) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Price, b.Price)
	})

	return res
}
