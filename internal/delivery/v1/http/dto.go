package http

import (
	"time"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/google/uuid"
)

type ProductDTO struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Rating   float64  `json:"rating"`
	Image    string   `json:"image"`
	Specs    []string `json:"specs"`
}

type PageDTO struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ListProductsResponse struct {
	Products []ProductDTO `json:"products"`
	PageDTO
}

type GetProductsInfoRequest struct {
	IDs []int64 `json:"ids"`
}

type GetProductsInfoResponse struct {
	Products []ProductDTO `json:"products"`
	NotFound []int64      `json:"not_found"`
}

type CategoryDTO struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

type BrandDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type PriceRangeDTO struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type MetadataResponse struct {
	Categories []CategoryDTO `json:"categories"`
	Brands     []BrandDTO    `json:"brands"`
	PriceRange PriceRangeDTO `json:"price_range"`
}

type ServiceDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"`
	Category      string `json:"category"`
	DurationHours int    `json:"duration_hours"`
}

type ListServicesResponse struct {
	Services []ServiceDTO `json:"services"`
	PageDTO
}

type QuoteLineRequest struct {
	ProductID    int64 `json:"product_id"`
	Quantity     int   `json:"quantity"`
	Delivery     bool  `json:"delivery"`
	Installation bool  `json:"installation"`
}

type QuoteRequest struct {
	Lines []QuoteLineRequest `json:"lines"`
}

type LineQuoteDTO struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     int64  `json:"subtotal"`
	Delivery     int64  `json:"delivery"`
	Installation int64  `json:"installation"`
	Total        int64  `json:"total"`
}

type QuoteDTO struct {
	Lines        []LineQuoteDTO `json:"lines"`
	Subtotal     int64          `json:"subtotal"`
	Delivery     int64          `json:"delivery"`
	Installation int64          `json:"installation"`
	Total        int64          `json:"total"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type SetAddOnRequest struct {
	Enabled *bool `json:"enabled"`
}

type CartLineDTO struct {
	Product      ProductDTO `json:"product"`
	Quantity     int        `json:"quantity"`
	Delivery     bool       `json:"delivery"`
	Installation bool       `json:"installation"`
}

type CartResponse struct {
	ID        uuid.UUID     `json:"id"`
	Lines     []CartLineDTO `json:"lines"`
	ItemCount int           `json:"item_count"`
	Quote     QuoteDTO      `json:"quote"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// MAPPERS

func toProductDTO(p domain.Product) ProductDTO {
	specs := p.Specs
	if specs == nil {
		specs = []string{}
	}

	return ProductDTO{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Brand:    p.Brand,
		Rating:   p.Rating,
		Image:    p.Image,
		Specs:    specs,
	}
}

func toProductDTOs(products []domain.Product) []ProductDTO {
	res := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		res = append(res, toProductDTO(p))
	}
	return res
}

func toPageDTO(p domain.Page) PageDTO {
	return PageDTO{Page: p.Number, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}

func toMetadataResponse(md *domain.Metadata) MetadataResponse {
	res := MetadataResponse{
		Categories: make([]CategoryDTO, 0, len(md.Categories)),
		Brands:     make([]BrandDTO, 0, len(md.Brands)),
		PriceRange: PriceRangeDTO{Min: md.PriceRange.Min, Max: md.PriceRange.Max},
	}
	for _, c := range md.Categories {
		res.Categories = append(res.Categories, CategoryDTO{Name: c.Name, Slug: c.Slug, Icon: c.Icon, Count: c.Count})
	}
	for _, b := range md.Brands {
		res.Brands = append(res.Brands, BrandDTO{Name: b.Name, Count: b.Count})
	}
	return res
}

func toServiceDTOs(services []domain.Service) []ServiceDTO {
	res := make([]ServiceDTO, 0, len(services))
	for _, s := range services {
		res = append(res, ServiceDTO{
			ID:            s.ID,
			Name:          s.Name,
			Description:   s.Description,
			Price:         s.Price,
			Category:      string(s.Category),
			DurationHours: s.DurationHours,
		})
	}
	return res
}

func toQuoteDTO(q *domain.Quote) QuoteDTO {
	res := QuoteDTO{
		Lines:        make([]LineQuoteDTO, 0, len(q.Lines)),
		Subtotal:     q.Subtotal,
		Delivery:     q.Delivery,
		Installation: q.Installation,
		Total:        q.Total,
	}
	for _, l := range q.Lines {
		res.Lines = append(res.Lines, LineQuoteDTO(l))
	}
	return res
}

func toQuoteLines(req []QuoteLineRequest) []usecase.QuoteLineReq {
	res := make([]usecase.QuoteLineReq, 0, len(req))
	for _, l := range req {
		res = append(res, usecase.QuoteLineReq(l))
	}
	return res
}

func toCartResponse(c *usecase.CartRes) CartResponse {
	res := CartResponse{
		ID:        c.ID,
		Lines:     make([]CartLineDTO, 0, len(c.Cart.Lines)),
		ItemCount: c.ItemCount,
		Quote:     toQuoteDTO(&c.Quote),
		UpdatedAt: c.UpdatedAt,
	}
	for _, l := range c.Cart.Lines {
		res.Lines = append(res.Lines, CartLineDTO{
			Product:      toProductDTO(l.Product),
			Quantity:     l.Quantity,
			Delivery:     l.Delivery,
			Installation: l.Installation,
		})
	}
	return res
}
