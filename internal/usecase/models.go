package usecase

import (
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/google/uuid"
)

// PRODUCT USECASE

const (
	DefaultPageLimit     = 24
	DefaultServicesLimit = 50
	MaxPageLimit         = 100
	MaxLineQuantity      = 999
)

// ListProductsReq — запрос витрины: фильтры, сортировка и страница.
type ListProductsReq struct {
	Filter domain.FilterState
	Sort   domain.SortKey
	Page   int
	Limit  int
}

// ListProductsRes — страница отфильтрованных товаров.
type ListProductsRes struct {
	Products []domain.Product
	Page     domain.Page
}

// ListServicesReq — запрос каталога услуг.
type ListServicesReq struct {
	Category domain.ServiceCategory
	Search   string
	Page     int
	Limit    int
}

// ListServicesRes — страница услуг.
type ListServicesRes struct {
	Services []domain.Service
	Page     domain.Page
}

// GetProductsReq запрос информации о продуктах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных продуктов.
type GetProductsRes struct {
	Products         []domain.Product
	NotFoundProducts []int64
}

// QuoteLineReq — позиция расчёта без сессии корзины.
type QuoteLineReq struct {
	ProductID    int64
	Quantity     int
	Delivery     bool
	Installation bool
}

// CART USECASE

// CartSession — корзина покупателя, хранящаяся в памяти процесса.
type CartSession struct {
	ID        uuid.UUID
	Cart      domain.Cart
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartRes — состояние корзины вместе с расчётом стоимости.
type CartRes struct {
	ID        uuid.UUID
	Cart      domain.Cart
	Quote     domain.Quote
	ItemCount int
	UpdatedAt time.Time
}

// SetAddOnReq — запрос на включение/выключение дополнительной услуги позиции.
type SetAddOnReq struct {
	CartID    uuid.UUID
	ProductID int64
	AddOn     domain.AddOn
	Value     bool
}

// CartMutation применяет редьюсер к корзине. Второе значение сообщает, изменилась ли корзина.
type CartMutation func(domain.Cart) (domain.Cart, bool)

// EVENTS

type CartEventType string

const (
	CartCreated     CartEventType = "cart.created"
	CartItemAdded   CartEventType = "cart.item_added"
	CartAddOnSet    CartEventType = "cart.addon_set"
	CartItemRemoved CartEventType = "cart.item_removed"
	CartCleared     CartEventType = "cart.cleared"
)

// CartEvent — событие изменения корзины, публикуемое в Kafka.
type CartEvent struct {
	EventID      uuid.UUID
	EventType    CartEventType
	CartID       uuid.UUID
	ProductID    int64
	Quantity     int
	Delivery     bool
	Installation bool
	Total        int64
	OccurredAt   time.Time
}

// MAPPERS

func NewCartRes(s *CartSession, pricing domain.Pricing) *CartRes {
	return &CartRes{
		ID:        s.ID,
		Cart:      s.Cart,
		Quote:     pricing.Quote(s.Cart),
		ItemCount: s.Cart.ItemCount(),
		UpdatedAt: s.UpdatedAt,
	}
}

func NewGetProductsRes(pr []domain.Product, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         pr,
		NotFoundProducts: notFoundProducts,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

// NewCartEvent собирает событие по состоянию корзины после изменения.
// Поля позиции заполняются, если позиция с productID есть в корзине.
func NewCartEvent(eventType CartEventType, s *CartSession, productID int64, total int64) *CartEvent {
	ev := &CartEvent{
		EventID:    uuid.New(),
		EventType:  eventType,
		CartID:     s.ID,
		ProductID:  productID,
		Total:      total,
		OccurredAt: time.Now().UTC(),
	}

	if line, ok := s.Cart.Line(productID); ok {
		ev.Quantity = line.Quantity
		ev.Delivery = line.Delivery
		ev.Installation = line.Installation
	}

	return ev
}
