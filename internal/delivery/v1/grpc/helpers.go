package grpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/DRSN-tech/go-storefront/pkg/e"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var invalidArgumentErrs = []error{
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

func GRPCErrorResponse(err error) error {
	for _, target := range invalidArgumentErrs {
		if errors.Is(err, target) {
			return status.Error(codes.InvalidArgument, target.Error())
		}
	}

	switch {
	case errors.Is(err, e.ErrProductNotFound):
		return status.Error(codes.NotFound, e.ErrProductNotFound.Error())
	case errors.Is(err, e.ErrCartNotFound):
		return status.Error(codes.NotFound, e.ErrCartNotFound.Error())
	case errors.Is(err, e.ErrCatalogUnavailable):
		return status.Error(codes.Unavailable, e.ErrCatalogUnavailable.Error())
	default:
		return status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}
}

// Поля запроса приходят как google.protobuf.Struct: числа в нём всегда double.

func stringField(s *structpb.Struct, name string) (string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return "", nil
	}
	sv, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
	}
	return sv.StringValue, nil
}

func boolField(s *structpb.Struct, name string) (bool, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return false, nil
	}
	bv, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
	}
	return bv.BoolValue, nil
}

// intField возвращает целое поле и признак его наличия.
func intField(s *structpb.Struct, name string) (int64, bool, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return 0, false, nil
	}
	n, err := toInt(v)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", name, err)
	}
	return n, true, nil
}

func toInt(v *structpb.Value) (int64, error) {
	nv, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, e.ErrInvalidBody
	}
	f := nv.NumberValue
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, e.ErrInvalidBody
	}
	return int64(f), nil
}

func stringList(s *structpb.Struct, name string) ([]string, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
	}

	res := make([]string, 0, len(lv.ListValue.GetValues()))
	for _, item := range lv.ListValue.GetValues() {
		sv, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
		}
		res = append(res, sv.StringValue)
	}
	return res, nil
}

func intList(s *structpb.Struct, name string) ([]int64, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
	}

	res := make([]int64, 0, len(lv.ListValue.GetValues()))
	for _, item := range lv.ListValue.GetValues() {
		n, err := toInt(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		res = append(res, n)
	}
	return res, nil
}

func structList(s *structpb.Struct, name string) ([]*structpb.Struct, error) {
	v, ok := s.GetFields()[name]
	if !ok {
		return nil, nil
	}
	lv, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
	}

	res := make([]*structpb.Struct, 0, len(lv.ListValue.GetValues()))
	for _, item := range lv.ListValue.GetValues() {
		sv, ok := item.GetKind().(*structpb.Value_StructValue)
		if !ok {
			return nil, fmt.Errorf("%s: %w", name, e.ErrInvalidBody)
		}
		res = append(res, sv.StructValue)
	}
	return res, nil
}
