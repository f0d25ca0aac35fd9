package usecase

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
)

// ImagesInfra подменяет ключи объектов в ссылках на изображения подписанными URL.
type ImagesInfra interface {
	ResolveImages(ctx context.Context, products []domain.Product) []domain.Product
}

// EventPublisher принимает события корзины к асинхронной отправке.
type EventPublisher interface {
	Publish(event *CartEvent) error
}

// MessageProducer синхронно пишет событие в брокер.
type MessageProducer interface {
	WriteMessage(ctx context.Context, event *CartEvent) error
}
