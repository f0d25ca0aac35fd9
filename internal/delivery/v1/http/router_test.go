package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/repository/memory"
	"github.com/DRSN-tech/go-storefront/internal/repository/static"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewNopLogger()
	pricing := domain.DefaultPricing()

	prUC := usecase.NewProductUC(static.NewCatalogRepo(""), nil, nil, pricing, log)
	require.NoError(t, prUC.LoadCatalog(context.Background()))
	cartUC := usecase.NewCartUC(memory.NewCartRepo(), prUC, pricing, nil, log)

	mux := chi.NewMux()
	NewRouter(mux, &cfg.HTTPConfig{SwaggerURL: "/swagger/doc.json"}, log).Init(prUC, cartUC)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func productIDs(products []ProductDTO) []int64 {
	res := make([]int64, 0, len(products))
	for _, p := range products {
		res = append(res, p.ID)
	}
	return res
}

func TestListProducts(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1/products"

	tests := []struct {
		name    string
		query   url.Values
		wantIDs []int64
		total   int
	}{
		{
			name:    "no filters returns catalog in order",
			query:   url.Values{},
			wantIDs: []int64{1, 2, 3, 4, 5, 6},
			total:   6,
		},
		{
			name:    "category and sort",
			query:   url.Values{"category": {"Видеокамеры"}, "sort": {"price_desc"}},
			wantIDs: []int64{5, 1},
			total:   2,
		},
		{
			name:    "price range is inclusive",
			query:   url.Values{"min_price": {"12500"}, "max_price": {"15600.00"}},
			wantIDs: []int64{1, 6},
			total:   2,
		},
		{
			name:    "query is case-insensitive",
			query:   url.Values{"q": {"привод"}},
			wantIDs: []int64{2, 6},
			total:   2,
		},
		{
			name:    "several brands",
			query:   url.Values{"brand": {"Bolid", "Nice"}},
			wantIDs: []int64{3, 4},
			total:   2,
		},
		{
			name:    "pagination",
			query:   url.Values{"sort": {"price_asc"}, "page": {"2"}, "limit": {"4"}},
			wantIDs: []int64{3, 5},
			total:   6,
		},
		{
			name:    "huge page number is an empty page",
			query:   url.Values{"page": {"9223372036854775807"}},
			wantIDs: []int64{},
			total:   6,
		},
		{
			name:    "nothing matches",
			query:   url.Values{"q": {"холодильник"}},
			wantIDs: []int64{},
			total:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res ListProductsResponse
			resp := doJSON(t, http.MethodGet, base+"?"+tt.query.Encode(), nil, &res)

			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.wantIDs, productIDs(res.Products))
			assert.Equal(t, tt.total, res.Total)
		})
	}
}

func TestListProducts_BadRequest(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1/products?"

	tests := []struct {
		query   string
		message string
	}{
		{query: "min_price=abc", message: "invalid price"},
		{query: "max_price=-1", message: "invalid price"},
		{query: "min_price=10.5", message: "price must be a whole number"},
		{query: "min_price=500&max_price=100", message: "min price must not exceed max price"},
		{query: "sort=popular", message: "unknown sort key"},
		{query: "page=first", message: "invalid pagination"},
		{query: "page=-2", message: "invalid pagination"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var res ErrorResponse
			resp := doJSON(t, http.MethodGet, base+tt.query, nil, &res)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t)

	var p ProductDTO
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/4", nil, &p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(8500), p.Price)
	assert.Equal(t, "Bolid", p.Brand)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/products/camera", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProductsInfo(t *testing.T) {
	srv := newTestServer(t)

	var res GetProductsInfoResponse
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/products/batch", GetProductsInfoRequest{IDs: []int64{6, 42, 1}}, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, []int64{6, 1}, productIDs(res.Products))
	assert.Equal(t, []int64{42}, res.NotFound)
}

func TestGetMetadata(t *testing.T) {
	srv := newTestServer(t)

	var md MetadataResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/metadata", nil, &md)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Len(t, md.Categories, 5)
	assert.Len(t, md.Brands, 6, "brands without products are omitted")
	assert.Equal(t, PriceRangeDTO{Min: 8500, Max: 89500}, md.PriceRange)
}

func TestListServices(t *testing.T) {
	srv := newTestServer(t)

	var res ListServicesResponse
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/services?category=delivery", nil, &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, res.Services)
	for _, s := range res.Services {
		assert.Equal(t, "delivery", s.Category)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/services?category=cleaning", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQuote(t *testing.T) {
	srv := newTestServer(t)

	var q QuoteDTO
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/quote", QuoteRequest{Lines: []QuoteLineRequest{
		{ProductID: 1, Quantity: 1, Installation: true},
	}}, &q)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(14375), q.Total)
	assert.Equal(t, int64(1875), q.Installation)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/quote", `{"lines": [], "coupon": "X"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/quote", QuoteRequest{Lines: []QuoteLineRequest{{ProductID: 77, Quantity: 1}}}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"

	var cart CartResponse
	resp := doJSON(t, http.MethodPost, api+"/carts", nil, &cart)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/v1/carts/"+cart.ID.String(), resp.Header.Get("Location"))
	assert.Empty(t, cart.Lines)

	cartURL := api + "/carts/" + cart.ID.String()

	doJSON(t, http.MethodPost, cartURL+"/items", AddItemRequest{ProductID: 1}, &cart)
	resp = doJSON(t, http.MethodPost, cartURL+"/items", AddItemRequest{ProductID: 1}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount)
	assert.Equal(t, int64(25000), cart.Quote.Total)

	enabled := true
	resp = doJSON(t, http.MethodPut, cartURL+"/items/1/addons/installation", SetAddOnRequest{Enabled: &enabled}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, cart.Lines[0].Installation)
	assert.Equal(t, int64(26875), cart.Quote.Total)

	resp = doJSON(t, http.MethodPut, cartURL+"/items/1/addons/delivery", SetAddOnRequest{Enabled: &enabled}, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var q QuoteDTO
	resp = doJSON(t, http.MethodGet, cartURL+"/total", nil, &q)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(26875+1500), q.Total)

	resp = doJSON(t, http.MethodPut, cartURL+"/items/1/addons/gift-wrap", SetAddOnRequest{Enabled: &enabled}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPut, cartURL+"/items/1/addons/delivery", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, cartURL+"/items", AddItemRequest{ProductID: 404}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	doJSON(t, http.MethodPost, cartURL+"/items", AddItemRequest{ProductID: 4}, &cart)
	require.Len(t, cart.Lines, 2)

	resp = doJSON(t, http.MethodDelete, cartURL+"/items/1", nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(8500), cart.Quote.Total)

	resp = doJSON(t, http.MethodDelete, cartURL+"/items", nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, int64(0), cart.Quote.Total)
}

func TestCart_NotFoundAndInvalidID(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var res ErrorResponse
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/carts/not-a-uuid", nil, &res)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid cart id", res.Message)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/healthz", nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json"))
}
