package domain

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDeliveryFee — фиксированная доплата за доставку одной позиции.
	DefaultDeliveryFee int64 = 1500
	// DefaultInstallationRate — доля цены товара, взимаемая за установку одной позиции.
	DefaultInstallationRate = "0.15"
)

// AddOn — дополнительная услуга к позиции корзины.
type AddOn string

const (
	AddOnDelivery     AddOn = "delivery"
	AddOnInstallation AddOn = "installation"
)

// ParseAddOn проверяет название дополнительной услуги.
func ParseAddOn(s string) (AddOn, bool) {
	switch a := AddOn(strings.ToLower(strings.TrimSpace(s))); a {
	case AddOnDelivery, AddOnInstallation:
		return a, true
	default:
		return "", false
	}
}

// CartLine — позиция корзины. Хранит снимок товара на момент добавления.
type CartLine struct {
	Product      Product
	Quantity     int
	Delivery     bool
	Installation bool
}

// Cart — упорядоченный набор позиций, не более одной на товар.
type Cart struct {
	Lines []CartLine
}

// Line возвращает позицию по идентификатору товара.
func (c Cart) Line(productID int64) (CartLine, bool) {
	if i := c.index(productID); i >= 0 {
		return c.Lines[i], true
	}
	return CartLine{}, false
}

// ItemCount возвращает суммарное количество единиц товара в корзине.
func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) index(productID int64) int {
	return slices.IndexFunc(c.Lines, func(l CartLine) bool { return l.Product.ID == productID })
}

// AddToCart увеличивает количество существующей позиции на 1
// или добавляет новую позицию с количеством 1 и без дополнительных услуг.
func AddToCart(c Cart, p Product) Cart {
	lines := slices.Clone(c.Lines)

	if i := c.index(p.ID); i >= 0 {
		lines[i].Quantity++
		return Cart{Lines: lines}
	}

	return Cart{Lines: append(lines, CartLine{Product: p, Quantity: 1})}
}

// SetCartAddOn включает или выключает дополнительную услугу позиции.
// Если позиции нет, корзина не меняется и возвращается false.
func SetCartAddOn(c Cart, productID int64, which AddOn, value bool) (Cart, bool) {
	i := c.index(productID)
	if i < 0 {
		return c, false
	}

	lines := slices.Clone(c.Lines)
	switch which {
	case AddOnDelivery:
		lines[i].Delivery = value
	case AddOnInstallation:
		lines[i].Installation = value
	default:
		return c, false
	}

	return Cart{Lines: lines}, true
}

// RemoveFromCart удаляет позицию. Удаление отсутствующей позиции ничего не меняет.
func RemoveFromCart(c Cart, productID int64) Cart {
	i := c.index(productID)
	if i < 0 {
		return c
	}

	return Cart{Lines: slices.Delete(slices.Clone(c.Lines), i, i+1)}
}

// ClearCart удаляет все позиции.
func ClearCart(Cart) Cart {
	return Cart{}
}

// Pricing задаёт тарифы дополнительных услуг.
type Pricing struct {
	DeliveryFee      int64
	InstallationRate decimal.Decimal
}

// DefaultPricing возвращает тарифы витрины: доставка 1500, установка 15% цены.
func DefaultPricing() Pricing {
	return Pricing{
		DeliveryFee:      DefaultDeliveryFee,
		InstallationRate: decimal.RequireFromString(DefaultInstallationRate),
	}
}

// InstallationFee возвращает floor(price × rate). Считается в десятичной арифметике,
// чтобы округление вниз не зависело от двоичного представления ставки.
func (p Pricing) InstallationFee(price int64) int64 {
	return decimal.NewFromInt(price).Mul(p.InstallationRate).Floor().IntPart()
}

// LineQuote — расчёт одной позиции.
type LineQuote struct {
	ProductID    int64
	Name         string
	UnitPrice    int64
	Quantity     int
	Subtotal     int64
	Delivery     int64
	Installation int64
	Total        int64
}

// Quote — расчёт корзины целиком.
type Quote struct {
	Lines        []LineQuote
	Subtotal     int64
	Delivery     int64
	Installation int64
	Total        int64
}

// Quote рассчитывает стоимость корзины. Доплаты начисляются за позицию,
// а не за единицу товара, и не зависят от количества.
func (p Pricing) Quote(c Cart) Quote {
	q := Quote{Lines: make([]LineQuote, 0, len(c.Lines))}

	for _, l := range c.Lines {
		lq := LineQuote{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Product.Price * int64(l.Quantity),
		}
		if l.Delivery {
			lq.Delivery = p.DeliveryFee
		}
		if l.Installation {
			lq.Installation = p.InstallationFee(l.Product.Price)
		}
		lq.Total = lq.Subtotal + lq.Delivery + lq.Installation

		q.Lines = append(q.Lines, lq)
		q.Subtotal += lq.Subtotal
		q.Delivery += lq.Delivery
		q.Installation += lq.Installation
		q.Total += lq.Total
	}

	return q
}

// ComputeTotal возвращает итоговую стоимость корзины по тарифам витрины.
func ComputeTotal(c Cart) int64 {
	return DefaultPricing().Quote(c).Total
}
