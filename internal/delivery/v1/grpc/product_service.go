package grpc

import (
	"context"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type ProductService struct {
	prUC   usecase.ProductUC
	logger logger.Logger
}

func NewProductService(prUC usecase.ProductUC, logger logger.Logger) *ProductService {
	return &ProductService{prUC: prUC, logger: logger}
}

func (g *ProductService) ListProducts(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListProducts"

	listReq, err := parseListProductsReq(req)
	if err != nil {
		return nil, g.fail(op, err)
	}

	res, err := g.prUC.ListProducts(ctx, listReq)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.reply(op, toGRPCPage(map[string]any{"products": toArrGRPCProduct(res.Products)}, res.Page))
}

func (g *ProductService) GetProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProduct"

	id, ok, err := intField(req, "id")
	if err != nil || !ok || id <= 0 {
		return nil, g.fail(op, e.ErrInvalidProductID)
	}

	product, err := g.prUC.GetProduct(ctx, id)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.reply(op, toGRPCProduct(*product))
}

func (g *ProductService) GetProductsInfo(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetProductsInfo"

	ids, err := intList(req, "ids")
	if err != nil {
		return nil, g.fail(op, err)
	}

	res, err := g.prUC.GetProductsInfo(ctx, usecase.NewGetProductsReq(ids))
	if err != nil {
		return nil, g.fail(op, err)
	}

	notFound := make([]any, 0, len(res.NotFoundProducts))
	for _, id := range res.NotFoundProducts {
		notFound = append(notFound, id)
	}

	return g.reply(op, map[string]any{
		"products":  toArrGRPCProduct(res.Products),
		"not_found": notFound,
	})
}

func (g *ProductService) GetMetadata(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.GetMetadata"

	md, err := g.prUC.GetMetadata(ctx)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.reply(op, toGRPCMetadata(md))
}

func (g *ProductService) ListServices(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListServices"

	category, err := stringField(req, "category")
	if err != nil {
		return nil, g.fail(op, err)
	}
	search, err := stringField(req, "search")
	if err != nil {
		return nil, g.fail(op, err)
	}
	page, _, err := intField(req, "page")
	if err != nil {
		return nil, g.fail(op, e.Wrap(err.Error(), e.ErrInvalidPagination))
	}
	limit, _, err := intField(req, "limit")
	if err != nil {
		return nil, g.fail(op, e.Wrap(err.Error(), e.ErrInvalidPagination))
	}

	res, err := g.prUC.ListServices(ctx, &usecase.ListServicesReq{
		Category: domain.ServiceCategory(category),
		Search:   search,
		Page:     int(page),
		Limit:    int(limit),
	})
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.reply(op, toGRPCPage(map[string]any{"services": toGRPCServices(res.Services)}, res.Page))
}

func (g *ProductService) QuoteCart(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.QuoteCart"

	items, err := structList(req, "lines")
	if err != nil {
		return nil, g.fail(op, err)
	}

	lines := make([]usecase.QuoteLineReq, 0, len(items))
	for _, item := range items {
		line, err := parseQuoteLine(item)
		if err != nil {
			return nil, g.fail(op, err)
		}
		lines = append(lines, line)
	}

	q, err := g.prUC.QuoteLines(ctx, lines)
	if err != nil {
		return nil, g.fail(op, err)
	}

	return g.reply(op, toGRPCQuote(q))
}

func (g *ProductService) fail(op string, err error) error {
	st := GRPCErrorResponse(err)
	if status.Code(st) == codes.Internal {
		g.logger.Errorf(e.Wrap(op, err), "request failed")
	} else {
		g.logger.Debugf("%s: %v", op, err)
	}
	return st
}

func (g *ProductService) reply(op string, m map[string]any) (*structpb.Struct, error) {
	res, err := newStruct(m)
	if err != nil {
		return nil, g.fail(op, err)
	}
	return res, nil
}

func parseListProductsReq(req *structpb.Struct) (*usecase.ListProductsReq, error) {
	query, err := stringField(req, "query")
	if err != nil {
		return nil, err
	}
	categories, err := stringList(req, "categories")
	if err != nil {
		return nil, err
	}
	brands, err := stringList(req, "brands")
	if err != nil {
		return nil, err
	}

	price := domain.FullPriceRange()
	if v, ok, err := intField(req, "min_price"); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidPrice)
	} else if ok {
		price.Min = v
	}
	if v, ok, err := intField(req, "max_price"); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidPrice)
	} else if ok {
		price.Max = v
	}

	rawSort, err := stringField(req, "sort")
	if err != nil {
		return nil, err
	}
	sortKey, ok := domain.ParseSortKey(rawSort)
	if !ok {
		return nil, e.ErrInvalidSort
	}

	page, _, err := intField(req, "page")
	if err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidPagination)
	}
	limit, _, err := intField(req, "limit")
	if err != nil {
		return nil, e.Wrap(err.Error(), e.ErrInvalidPagination)
	}

	state := domain.DefaultFilterState().SetQuery(query).SetPriceRange(price)
	state.Categories = categories
	state.Brands = brands

	return &usecase.ListProductsReq{
		Filter: state,
		Sort:   sortKey,
		Page:   int(page),
		Limit:  int(limit),
	}, nil
}

func parseQuoteLine(item *structpb.Struct) (usecase.QuoteLineReq, error) {
	productID, ok, err := intField(item, "product_id")
	if err != nil || !ok {
		return usecase.QuoteLineReq{}, e.ErrInvalidProductID
	}

	quantity, ok, err := intField(item, "quantity")
	if err != nil {
		return usecase.QuoteLineReq{}, e.ErrInvalidQuantity
	}
	if !ok {
		quantity = 1
	}

	delivery, err := boolField(item, "delivery")
	if err != nil {
		return usecase.QuoteLineReq{}, err
	}
	installation, err := boolField(item, "installation")
	if err != nil {
		return usecase.QuoteLineReq{}, err
	}

	return usecase.QuoteLineReq{
		ProductID:    productID,
		Quantity:     int(quantity),
		Delivery:     delivery,
		Installation: installation,
	}, nil
}
