package grpc

import (
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

func toGRPCProduct(p domain.Product) map[string]any {
	specs := make([]any, 0, len(p.Specs))
	for _, s := range p.Specs {
		specs = append(specs, s)
	}

	return map[string]any{
		"id":       p.ID,
		"name":     p.Name,
		"price":    p.Price,
		"category": p.Category,
		"brand":    p.Brand,
		"rating":   p.Rating,
		"image":    p.Image,
		"specs":    specs,
	}
}

func toArrGRPCProduct(prs []domain.Product) []any {
	res := make([]any, 0, len(prs))
	for _, p := range prs {
		res = append(res, toGRPCProduct(p))
	}
	return res
}

func toGRPCPage(res map[string]any, p domain.Page) map[string]any {
	res["page"] = p.Number
	res["limit"] = p.Limit
	res["total"] = p.Total
	res["pages"] = p.Pages
	return res
}

func toGRPCMetadata(md *domain.Metadata) map[string]any {
	categories := make([]any, 0, len(md.Categories))
	for _, c := range md.Categories {
		categories = append(categories, map[string]any{
			"name":  c.Name,
			"slug":  c.Slug,
			"icon":  c.Icon,
			"count": c.Count,
		})
	}

	brands := make([]any, 0, len(md.Brands))
	for _, b := range md.Brands {
		brands = append(brands, map[string]any{"name": b.Name, "count": b.Count})
	}

	return map[string]any{
		"categories":  categories,
		"brands":      brands,
		"price_range": map[string]any{"min": md.PriceRange.Min, "max": md.PriceRange.Max},
	}
}

func toGRPCServices(services []domain.Service) []any {
	res := make([]any, 0, len(services))
	for _, s := range services {
		res = append(res, map[string]any{
			"id":             s.ID,
			"name":           s.Name,
			"description":    s.Description,
			"price":          s.Price,
			"category":       string(s.Category),
			"duration_hours": s.DurationHours,
		})
	}
	return res
}

func toGRPCQuote(q *domain.Quote) map[string]any {
	lines := make([]any, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, map[string]any{
			"product_id":   l.ProductID,
			"name":         l.Name,
			"unit_price":   l.UnitPrice,
			"quantity":     l.Quantity,
			"subtotal":     l.Subtotal,
			"delivery":     l.Delivery,
			"installation": l.Installation,
			"total":        l.Total,
		})
	}

	return map[string]any{
		"lines":        lines,
		"subtotal":     q.Subtotal,
		"delivery":     q.Delivery,
		"installation": q.Installation,
		"total":        q.Total,
	}
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	return structpb.NewStruct(m)
}
