package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/google/uuid"
)

// CartUseCase управляет сессиями корзин. Каждое изменение корзины выполняется
// одним вызовом редьюсера под блокировкой хранилища.
type CartUseCase struct {
	carts     CartRepository
	catalog   CatalogProvider
	pricing   domain.Pricing
	publisher EventPublisher // nil, если публикация событий отключена
	logger    logger.Logger
}

func NewCartUC(
	carts CartRepository,
	catalog CatalogProvider,
	pricing domain.Pricing,
	publisher EventPublisher,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		carts:     carts,
		catalog:   catalog,
		pricing:   pricing,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateCart создаёт пустую корзину.
func (c *CartUseCase) CreateCart(ctx context.Context) (*CartRes, error) {
	const op = "CartUseCase.CreateCart"

	session, err := c.carts.Create(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := NewCartRes(session, c.pricing)
	c.publish(NewCartEvent(CartCreated, session, 0, res.Quote.Total))

	return res, nil
}

// GetCart возвращает корзину с расчётом стоимости.
func (c *CartUseCase) GetCart(ctx context.Context, id uuid.UUID) (*CartRes, error) {
	session, err := c.carts.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap("CartUseCase.GetCart", err)
	}

	return NewCartRes(session, c.pricing), nil
}

// AddItem добавляет единицу товара в корзину.
func (c *CartUseCase) AddItem(ctx context.Context, id uuid.UUID, productID int64) (*CartRes, error) {
	const op = "CartUseCase.AddItem"

	catalog, err := c.catalog.Catalog()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, ok := catalog.ProductByID(productID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	return c.mutate(ctx, id, CartItemAdded, productID, func(cart domain.Cart) (domain.Cart, bool) {
		return domain.AddToCart(cart, product), true
	})
}

// SetAddOn включает или выключает доставку или установку позиции.
// Для отсутствующей позиции корзина возвращается без изменений.
func (c *CartUseCase) SetAddOn(ctx context.Context, req *SetAddOnReq) (*CartRes, error) {
	const op = "CartUseCase.SetAddOn"

	addOn, ok := domain.ParseAddOn(string(req.AddOn))
	if !ok {
		return nil, e.Wrap(op, e.ErrUnknownAddOn)
	}

	res, err := c.mutate(ctx, req.CartID, CartAddOnSet, req.ProductID, func(cart domain.Cart) (domain.Cart, bool) {
		next, ok := domain.SetCartAddOn(cart, req.ProductID, addOn, req.Value)
		if !ok {
			return cart, false
		}

		line, _ := cart.Line(req.ProductID)
		changed := line.Delivery != req.Value
		if addOn == domain.AddOnInstallation {
			changed = line.Installation != req.Value
		}
		return next, changed
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return res, nil
}

// RemoveItem удаляет позицию. Удаление отсутствующей позиции ничего не меняет.
func (c *CartUseCase) RemoveItem(ctx context.Context, id uuid.UUID, productID int64) (*CartRes, error) {
	return c.mutate(ctx, id, CartItemRemoved, productID, func(cart domain.Cart) (domain.Cart, bool) {
		_, exists := cart.Line(productID)
		return domain.RemoveFromCart(cart, productID), exists
	})
}

// ClearCart удаляет все позиции корзины.
func (c *CartUseCase) ClearCart(ctx context.Context, id uuid.UUID) (*CartRes, error) {
	return c.mutate(ctx, id, CartCleared, 0, func(cart domain.Cart) (domain.Cart, bool) {
		return domain.ClearCart(cart), len(cart.Lines) > 0
	})
}

// QuoteCart рассчитывает стоимость корзины.
func (c *CartUseCase) QuoteCart(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	session, err := c.carts.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap("CartUseCase.QuoteCart", err)
	}

	quote := c.pricing.Quote(session.Cart)
	return &quote, nil
}

// mutate применяет изменение к корзине и публикует событие, если корзина изменилась.
func (c *CartUseCase) mutate(
	ctx context.Context,
	id uuid.UUID,
	eventType CartEventType,
	productID int64,
	mutation CartMutation,
) (*CartRes, error) {
	session, changed, err := c.carts.Update(ctx, id, mutation)
	if err != nil {
		return nil, e.Wrap("CartUseCase."+string(eventType), err)
	}

	res := NewCartRes(session, c.pricing)
	if changed {
		c.publish(NewCartEvent(eventType, session, productID, res.Quote.Total))
	}

	return res, nil
}

// publish отправляет событие без ожидания. Ошибка публикации не влияет на операцию с корзиной.
func (c *CartUseCase) publish(event *CartEvent) {
	if c.publisher == nil {
		return
	}

	if err := c.publisher.Publish(event); err != nil {
		c.logger.Warnf("Failed to publish cart event %s (cart_id: %s): %v", event.EventType, event.CartID, err)
	}
}
