package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Фильтрует каталог по строке поиска, категориям, брендам и цене, сортирует и разбивает на страницы
//	@Tags			products
//	@Produce		json
//	@Param			q			query		string		false	"Подстрока названия, без учёта регистра"
//	@Param			category	query		[]string	false	"Категория (можно повторять)"	collectionFormat(multi)
//	@Param			brand		query		[]string	false	"Бренд (можно повторять)"		collectionFormat(multi)
//	@Param			min_price	query		number		false	"Минимальная цена"
//	@Param			max_price	query		number		false	"Максимальная цена"
//	@Param			sort		query		string		false	"Сортировка"	Enums(default, price_asc, price_desc, rating_desc, name_asc)
//	@Param			page		query		int			false	"Номер страницы, с 1"
//	@Param			limit		query		int			false	"Размер страницы, не больше 100"
//	@Success		200			{object}	ListProductsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseListProductsReq(r)
	if err != nil {
		p.logger.Debugf("%d %s: %v", http.StatusBadRequest, r.URL.RawQuery, err)
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.ListProducts(r.Context(), req)
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ListProductsResponse{
		Products: toProductDTOs(res.Products),
		PageDTO:  toPageDTO(res.Page),
	})
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		int	true	"Идентификатор товара"
//	@Success	200			{object}	ProductDTO
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{productID} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductDTO(*product))
}

// getProductsInfo
//
//	@Summary		Товары по списку идентификаторов
//	@Description	Возвращает найденные товары в порядке запроса и список ненайденных идентификаторов
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			request	body		GetProductsInfoRequest	true	"Идентификаторы"
//	@Success		200		{object}	GetProductsInfoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/batch [post]
func (p *ProductHandler) getProductsInfo(w http.ResponseWriter, r *http.Request) {
	var req GetProductsInfoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.GetProductsInfo(r.Context(), usecase.NewGetProductsReq(req.IDs))
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	notFound := res.NotFoundProducts
	if notFound == nil {
		notFound = []int64{}
	}

	WriteSuccess(w, http.StatusOK, GetProductsInfoResponse{
		Products: toProductDTOs(res.Products),
		NotFound: notFound,
	})
}

// getMetadata
//
//	@Summary		Метаданные каталога
//	@Description	Категории и бренды с количеством товаров, диапазон цен
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	MetadataResponse
//	@Router			/metadata [get]
func (p *ProductHandler) getMetadata(w http.ResponseWriter, r *http.Request) {
	md, err := p.productUsecase.GetMetadata(r.Context())
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toMetadataResponse(md))
}

// listServices
//
//	@Summary	Каталог услуг
//	@Tags		services
//	@Produce	json
//	@Param		category	query		string	false	"Категория услуги"	Enums(delivery, installation, setup)
//	@Param		search		query		string	false	"Подстрока названия"
//	@Param		page		query		int		false	"Номер страницы, с 1"
//	@Param		limit		query		int		false	"Размер страницы"
//	@Success	200			{object}	ListServicesResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/services [get]
func (p *ProductHandler) listServices(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", e.ErrInvalidPagination)
	if err != nil {
		WriteError(w, err)
		return
	}
	limit, err := queryInt(r, "limit", e.ErrInvalidPagination)
	if err != nil {
		WriteError(w, err)
		return
	}

	q := r.URL.Query()
	res, err := p.productUsecase.ListServices(r.Context(), &usecase.ListServicesReq{
		Category: domain.ServiceCategory(strings.ToLower(strings.TrimSpace(q.Get("category")))),
		Search:   q.Get("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, ListServicesResponse{
		Services: toServiceDTOs(res.Services),
		PageDTO:  toPageDTO(res.Page),
	})
}

// quote
//
//	@Summary		Расчёт стоимости без корзины
//	@Description	Собирает корзину из переданных позиций и возвращает расчёт с доплатами за доставку и установку
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		QuoteRequest	true	"Позиции"
//	@Success		200		{object}	QuoteDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/quote [post]
func (p *ProductHandler) quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	q, err := p.productUsecase.QuoteLines(r.Context(), toQuoteLines(req.Lines))
	if err != nil {
		p.writeUsecaseError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toQuoteDTO(q))
}

func (p *ProductHandler) writeUsecaseError(w http.ResponseWriter, err error) {
	if code, _ := ToHTTPResponse(err); code >= http.StatusInternalServerError {
		p.logger.Errorf(err, "%d", code)
	} else {
		p.logger.Debugf("%d: %v", code, err)
	}
	WriteError(w, err)
}

// parseListProductsReq собирает состояние фильтров из параметров запроса.
func parseListProductsReq(r *http.Request) (*usecase.ListProductsReq, error) {
	q := r.URL.Query()

	state := domain.DefaultFilterState().SetQuery(q.Get("q"))
	state.Categories = nonEmpty(q["category"])
	state.Brands = nonEmpty(q["brand"])

	price := domain.FullPriceRange()
	if raw := q.Get("min_price"); raw != "" {
		v, err := parsePrice(raw)
		if err != nil {
			return nil, e.Wrap("min_price", err)
		}
		price.Min = v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := parsePrice(raw)
		if err != nil {
			return nil, e.Wrap("max_price", err)
		}
		price.Max = v
	}
	state = state.SetPriceRange(price)

	sortKey, ok := domain.ParseSortKey(q.Get("sort"))
	if !ok {
		return nil, e.ErrInvalidSort
	}

	page, err := queryInt(r, "page", e.ErrInvalidPagination)
	if err != nil {
		return nil, err
	}
	limit, err := queryInt(r, "limit", e.ErrInvalidPagination)
	if err != nil {
		return nil, err
	}

	return &usecase.ListProductsReq{
		Filter: state,
		Sort:   sortKey,
		Page:   page,
		Limit:  limit,
	}, nil
}

func nonEmpty(values []string) []string {
	var res []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}
