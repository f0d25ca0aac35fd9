package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// badRequestErrs — ошибки, текст которых возвращается клиенту со статусом 400.
var badRequestErrs = []error{
	e.ErrStatusBadRequest,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrInvalidPriceRange,
	e.ErrInvalidSort,
	e.ErrInvalidPagination,
	e.ErrInvalidProductID,
	e.ErrInvalidCartID,
	e.ErrUnknownAddOn,
	e.ErrInvalidQuantity,
	e.ErrInvalidBody,
}

func ToHTTPResponse(err error) (int, string) {
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCartNotFound):
		return http.StatusNotFound, e.ErrCartNotFound.Error()
	case errors.Is(err, e.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable, e.ErrCatalogUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// parsePrice переводит строку вида "12500" или "12500.00" в целые рубли.
// Дробная часть, отрицательные значения и суммы больше 10^9 отклоняются.
func parsePrice(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.IsNegative() {
		return 0, e.ErrInvalidPrice
	}

	if d.GreaterThan(decimal.NewFromInt(1_000_000_000)) {
		return 0, e.ErrInvalidPrice
	}

	if !d.IsInteger() {
		return 0, e.ErrPricePrecision
	}

	return d.IntPart(), nil
}

// queryInt читает целый параметр запроса. Отсутствующий параметр даёт 0.
func queryInt(r *http.Request, name string, errInvalid error) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(name, errInvalid)
	}
	return n, nil
}

func cartIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "cartID"))
	if err != nil {
		return uuid.Nil, e.ErrInvalidCartID
	}
	return id, nil
}

func productIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidProductID
	}
	return id, nil
}

// decodeJSON разбирает тело запроса. Неизвестные поля и лишние данные после объекта отклоняются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidBody)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return e.ErrInvalidBody
	}

	return nil
}
