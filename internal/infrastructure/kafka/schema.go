package kafka

import (
	"time"

	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/hamba/avro/v2"
)

const CartEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.cart",
	"name": "cart_event",
	"fields": [
		{"name": "event_id", "type": "string"},
		{"name": "event_type", "type": "string"},
		{"name": "cart_id", "type": "string"},
		{"name": "product_id", "type": "long"},
		{"name": "quantity", "type": "int"},
		{"name": "delivery", "type": "boolean"},
		{"name": "installation", "type": "boolean"},
		{"name": "total", "type": "long"},
		{"name": "occurred_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

var cartEventSchemaV1 = avro.MustParse(CartEventSchemaTextV1)

// CartEventV1 — avro-представление события корзины.
type CartEventV1 struct {
	EventID      string    `avro:"event_id"`
	EventType    string    `avro:"event_type"`
	CartID       string    `avro:"cart_id"`
	ProductID    int64     `avro:"product_id"`
	Quantity     int       `avro:"quantity"`
	Delivery     bool      `avro:"delivery"`
	Installation bool      `avro:"installation"`
	Total        int64     `avro:"total"`
	OccurredAt   time.Time `avro:"occurred_at"`
}

func NewCartEventV1(ev *usecase.CartEvent) CartEventV1 {
	return CartEventV1{
		EventID:      ev.EventID.String(),
		EventType:    string(ev.EventType),
		CartID:       ev.CartID.String(),
		ProductID:    ev.ProductID,
		Quantity:     ev.Quantity,
		Delivery:     ev.Delivery,
		Installation: ev.Installation,
		Total:        ev.Total,
		OccurredAt:   ev.OccurredAt.UTC(),
	}
}

func EncodeCartEvent(ev *usecase.CartEvent) ([]byte, error) {
	return avro.Marshal(cartEventSchemaV1, NewCartEventV1(ev))
}

func DecodeCartEvent(data []byte) (CartEventV1, error) {
	var v CartEventV1
	err := avro.Unmarshal(cartEventSchemaV1, data, &v)
	return v, err
}
