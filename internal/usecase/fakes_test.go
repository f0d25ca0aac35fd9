package usecase_test

import (
	"context"
	"sync"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
)

func testCatalog() *domain.Catalog {
	return &domain.Catalog{
		Products: []domain.Product{
			{ID: 1, Name: "IP-камера Hikvision DS-2CD2143G2-I 4MP", Price: 12500, Category: "Видеокамеры", Brand: "Hikvision", Rating: 4.8, Image: "cameras/hikvision.jpg"},
			{ID: 2, Name: "Привод для откатных ворот CAME BX-243", Price: 28900, Category: "Автоматика для ворот", Brand: "CAME", Rating: 4.9, Image: "/placeholder.svg"},
			{ID: 3, Name: "Шлагбаум автоматический NICE WideM", Price: 42000, Category: "Шлагбаумы", Brand: "Nice", Rating: 4.7},
			{ID: 4, Name: "Прибор пожарный Болид С2000-КДЛ", Price: 8500, Category: "Пожарная сигнализация", Brand: "Bolid", Rating: 4.6},
			{ID: 5, Name: "PTZ-камера Dahua SD59432XA-HNR", Price: 89500, Category: "Видеокамеры", Brand: "Dahua", Rating: 4.9},
			{ID: 6, Name: "Привод для распашных ворот BFT VIRGO", Price: 15600, Category: "Автоматика для ворот", Brand: "BFT", Rating: 4.5},
		},
		Categories: []domain.Category{
			{Name: "Видеокамеры", Icon: "Camera"},
			{Name: "Автоматика для ворот", Icon: "DoorOpen"},
			{Name: "Шлагбаумы", Icon: "Construction"},
			{Name: "Пожарная сигнализация", Icon: "Flame"},
			{Name: "Комплектующие", Icon: "Wrench"},
		},
		Brands: []domain.Brand{{Name: "Hikvision"}, {Name: "Dahua"}, {Name: "Bolid"}, {Name: "CAME"}, {Name: "Nice"}, {Name: "BFT"}},
		Services: []domain.Service{
			{ID: 1, Name: "Доставка по городу", Price: 500, Category: domain.ServiceDelivery},
			{ID: 2, Name: "Установка видеокамеры", Price: 2000, Category: domain.ServiceInstallation},
			{ID: 3, Name: "Настройка видеонаблюдения", Price: 3000, Category: domain.ServiceSetup},
		},
	}
}

type fakeSource struct {
	catalog *domain.Catalog
	err     error
	calls   int
}

func (f *fakeSource) LoadCatalog(context.Context) (*domain.Catalog, error) {
	f.calls++
	return f.catalog, f.err
}

type fakeCache struct {
	mu      sync.Mutex
	catalog *domain.Catalog
	getErr  error
	setCh   chan *domain.Catalog
	deleted bool
}

func (f *fakeCache) GetCatalog(context.Context) (*domain.Catalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.catalog == nil {
		return nil, e.ErrCacheMiss
	}
	return f.catalog, nil
}

func (f *fakeCache) SetCatalog(_ context.Context, c *domain.Catalog) error {
	f.mu.Lock()
	f.catalog = c
	f.mu.Unlock()

	if f.setCh != nil {
		f.setCh <- c
	}
	return nil
}

func (f *fakeCache) DeleteCatalog(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.catalog = nil
	f.deleted = true
	return nil
}

// fakeImages подменяет ключи объектов на фиктивные подписанные ссылки.
type fakeImages struct{}

func (fakeImages) ResolveImages(_ context.Context, products []domain.Product) []domain.Product {
	res := make([]domain.Product, len(products))
	for i, p := range products {
		if domain.IsObjectKey(p.Image) {
			p.Image = "https://s3.local/" + p.Image + "?sig=1"
		}
		res[i] = p
	}
	return res
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*usecase.CartEvent
	err    error
}

func (f *fakePublisher) Publish(ev *usecase.CartEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakePublisher) types() []usecase.CartEventType {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]usecase.CartEventType, 0, len(f.events))
	for _, ev := range f.events {
		res = append(res, ev.EventType)
	}
	return res
}

func (f *fakePublisher) last() *usecase.CartEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.events) == 0 {
		return nil
	}
	return f.events[len(f.events)-1]
}
