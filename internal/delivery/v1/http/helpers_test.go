package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/stretchr/testify/assert"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
		msg  string
	}{
		{err: e.Wrap("ProductUseCase.ListProducts", e.ErrInvalidSort), code: http.StatusBadRequest, msg: "unknown sort key"},
		{err: e.ErrUnknownAddOn, code: http.StatusBadRequest, msg: "unknown add-on"},
		{err: fmt.Errorf("op: %w", e.ErrCartNotFound), code: http.StatusNotFound, msg: "cart not found"},
		{err: e.ErrProductNotFound, code: http.StatusNotFound, msg: "product not found"},
		{err: errors.Join(e.ErrCatalogUnavailable, errors.New("db down")), code: http.StatusServiceUnavailable, msg: "catalog unavailable"},
		{err: errors.New("boom"), code: http.StatusInternalServerError, msg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			code, msg := ToHTTPResponse(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{in: "12500", want: 12500},
		{in: " 12500.00 ", want: 12500},
		{in: "0", want: 0},
		{in: "12500.5", wantErr: e.ErrPricePrecision},
		{in: "-1", wantErr: e.ErrInvalidPrice},
		{in: "1e12", wantErr: e.ErrInvalidPrice},
		{in: "дёшево", wantErr: e.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePrice(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
