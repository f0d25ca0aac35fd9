package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки каталога
	ErrCatalogUnavailable = fmt.Errorf("catalog unavailable")
	ErrCacheMiss          = fmt.Errorf("cache miss")
	ErrInvalidCatalog     = fmt.Errorf("invalid catalog")
	ErrEventQueueFull     = fmt.Errorf("event queue is full")

	// 400 Bad Request
	ErrStatusBadRequest  = fmt.Errorf("bad request")
	ErrInvalidPrice      = fmt.Errorf("invalid price")
	ErrPricePrecision    = fmt.Errorf("price must be a whole number")
	ErrInvalidPriceRange = fmt.Errorf("min price must not exceed max price")
	ErrInvalidSort       = fmt.Errorf("unknown sort key")
	ErrInvalidPagination = fmt.Errorf("invalid pagination")
	ErrInvalidProductID  = fmt.Errorf("invalid product id")
	ErrInvalidCartID     = fmt.Errorf("invalid cart id")
	ErrUnknownAddOn      = fmt.Errorf("unknown add-on")
	ErrInvalidQuantity   = fmt.Errorf("quantity must be positive")
	ErrInvalidBody       = fmt.Errorf("invalid request body")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrCartNotFound    = fmt.Errorf("cart not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
