package http

import (
	"net/http"

	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/DRSN-tech/go-storefront/internal/usecase"
	"github.com/DRSN-tech/go-storefront/pkg/e"
	"github.com/DRSN-tech/go-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// createCart
//
//	@Summary	Создание корзины
//	@Tags		cart
//	@Produce	json
//	@Success	201	{object}	CartResponse
//	@Router		/carts [post]
func (c *CartHandler) createCart(w http.ResponseWriter, r *http.Request) {
	cart, err := c.cartUsecase.CreateCart(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/carts/"+cart.ID.String())
	WriteSuccess(w, http.StatusCreated, toCartResponse(cart))
}

// getCart
//
//	@Summary	Состояние корзины
//	@Tags		cart
//	@Produce	json
//	@Param		cartID	path		string	true	"Идентификатор корзины"
//	@Success	200		{object}	CartResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/carts/{cartID} [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.GetCart(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Повторное добавление увеличивает количество в существующей позиции
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			cartID	path		string			true	"Идентификатор корзины"
//	@Param			request	body		AddItemRequest	true	"Товар"
//	@Success		200		{object}	CartResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/carts/{cartID}/items [post]
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req AddItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ProductID <= 0 {
		WriteError(w, e.ErrInvalidProductID)
		return
	}

	cart, err := c.cartUsecase.AddItem(r.Context(), id, req.ProductID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary		Удаление позиции
//	@Description	Удаление отсутствующей позиции не меняет корзину
//	@Tags			cart
//	@Produce		json
//	@Param			cartID		path		string	true	"Идентификатор корзины"
//	@Param			productID	path		int		true	"Идентификатор товара"
//	@Success		200			{object}	CartResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/carts/{cartID}/items/{productID} [delete]
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	productID, err := productIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.RemoveItem(r.Context(), id, productID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Param		cartID	path		string	true	"Идентификатор корзины"
//	@Success	200		{object}	CartResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/carts/{cartID}/items [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := c.cartUsecase.ClearCart(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// setAddOn
//
//	@Summary		Доставка или установка для позиции
//	@Description	Включает или выключает дополнительную услугу. Для отсутствующей позиции ничего не меняет
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			cartID		path		string			true	"Идентификатор корзины"
//	@Param			productID	path		int				true	"Идентификатор товара"
//	@Param			addon		path		string			true	"Услуга"	Enums(delivery, installation)
//	@Param			request		body		SetAddOnRequest	true	"Значение"
//	@Success		200			{object}	CartResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/carts/{cartID}/items/{productID}/addons/{addon} [put]
func (c *CartHandler) setAddOn(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	productID, err := productIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	addOn, ok := domain.ParseAddOn(chi.URLParam(r, "addon"))
	if !ok {
		WriteError(w, e.ErrUnknownAddOn)
		return
	}

	var req SetAddOnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Enabled == nil {
		WriteError(w, e.Wrap("enabled is required", e.ErrInvalidBody))
		return
	}

	cart, err := c.cartUsecase.SetAddOn(r.Context(), &usecase.SetAddOnReq{
		CartID:    id,
		ProductID: productID,
		AddOn:     addOn,
		Value:     *req.Enabled,
	})
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// getTotal
//
//	@Summary	Расчёт стоимости корзины
//	@Tags		cart
//	@Produce	json
//	@Param		cartID	path		string	true	"Идентификатор корзины"
//	@Success	200		{object}	QuoteDTO
//	@Failure	404		{object}	ErrorResponse
//	@Router		/carts/{cartID}/total [get]
func (c *CartHandler) getTotal(w http.ResponseWriter, r *http.Request) {
	id, err := cartIDParam(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	q, err := c.cartUsecase.QuoteCart(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toQuoteDTO(q))
}

func (c *CartHandler) writeError(w http.ResponseWriter, err error) {
	if code, _ := ToHTTPResponse(err); code >= http.StatusInternalServerError {
		c.logger.Errorf(err, "%d", code)
	} else {
		c.logger.Debugf("%d: %v", code, err)
	}
	WriteError(w, err)
}
