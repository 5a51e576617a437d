package http

import (
	"context"
	"errors"
	"net/http"

	"product-catalog/internal/catalog"
	"product-catalog/internal/catalog/service"

	"github.com/gin-gonic/gin"
)

const cartIDParam = "cartID"

type createCartResponse struct {
	ID string `json:"id" example:"6f1c2a9e-3b7d-4c1e-9a55-1f0e3c2b8d41"`
}

type addLineRequest struct {
	ProductID int64 `json:"product_id" binding:"required" example:"1"`
	Quantity  int   `json:"quantity" binding:"required,gt=0" example:"2"`
}

type cartLineResponse struct {
	ProductID int64  `json:"product_id" example:"1"`
	Name      string `json:"name" example:"Kettle"`
	Quantity  int    `json:"quantity" example:"2"`
	UnitPrice string `json:"unit_price" example:"24.99"`
	Subtotal  string `json:"subtotal" example:"49.98"`
}

type cartResponse struct {
	ID    string             `json:"id"`
	Lines []cartLineResponse `json:"lines"`
	Total string             `json:"total" example:"49.98"`
}

type lineFailureResponse struct {
	ProductID int64  `json:"product_id" example:"3"`
	Quantity  int    `json:"quantity" example:"5"`
	Error     string `json:"error" example:"insufficient stock"`
}

type checkoutResponse struct {
	Order  catalog.Order         `json:"order"`
	Failed []lineFailureResponse `json:"failed"`
}

type checkoutFailedResponse struct {
	Error  string                `json:"error" example:"no cart line could be reconciled"`
	Failed []lineFailureResponse `json:"failed"`
}

// CreateCart godoc
// @Summary      Open a cart session
// @Tags         carts
// @Produce      json
// @Success      201  {object}  createCartResponse
// @Router       /carts [post]
func (h *Handler) CreateCart(c *gin.Context) {
	c.JSON(http.StatusCreated, createCartResponse{ID: h.carts.Create()})
}

// GetCart godoc
// @Summary      Show cart lines and total
// @Tags         carts
// @Produce      json
// @Param        cartID  path      string  true  "Cart ID"
// @Success      200     {object}  cartResponse
// @Failure      404     {object}  errorResponse
// @Router       /carts/{cartID} [get]
func (h *Handler) GetCart(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	if err := h.refresh(c.Request.Context(), cart); err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get cart"})
		return
	}
	c.JSON(http.StatusOK, newCartResponse(c.Param(cartIDParam), cart))
}

// AddCartLine godoc
// @Summary      Add a product to a cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        cartID  path      string          true  "Cart ID"
// @Param        body    body      addLineRequest  true  "Line to add"
// @Success      200     {object}  cartResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      500     {object}  errorResponse
// @Router       /carts/{cartID}/lines [post]
func (h *Handler) AddCartLine(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, found, err := h.service.FetchRaw(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get product"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: catalog.ErrNotFound.Error()})
		return
	}

	cart.AddItem(&product, req.Quantity)
	cart.Refresh(&product)
	c.JSON(http.StatusOK, newCartResponse(c.Param(cartIDParam), cart))
}

// RemoveCartLine godoc
// @Summary      Remove a product from a cart
// @Tags         carts
// @Param        cartID     path  string  true  "Cart ID"
// @Param        productID  path  int     true  "Product ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /carts/{cartID}/lines/{productID} [delete]
func (h *Handler) RemoveCartLine(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	productID, ok := parseID(c, "productID", "invalid product id")
	if !ok {
		return
	}

	if !cart.RemoveLine(productID) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "cart line not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Checkout godoc
// @Summary      Check out a cart
// @Description  Decrements stock for every line that can be fulfilled and records an order for them at current prices. Lines that cannot be fulfilled are reported in "failed". On success the checked-out quantities leave the cart; on any error stock is left as it was and the cart is kept.
// @Tags         carts
// @Produce      json
// @Param        cartID  path      string  true  "Cart ID"
// @Success      201     {object}  checkoutResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  checkoutFailedResponse
// @Failure      500     {object}  errorResponse
// @Router       /carts/{cartID}/checkout [post]
func (h *Handler) Checkout(c *gin.Context) {
	cart, ok := h.cart(c)
	if !ok {
		return
	}

	order, report, err := h.service.Checkout(c.Request.Context(), cart)
	switch {
	case errors.Is(err, catalog.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	case errors.Is(err, catalog.ErrNothingReconciled):
		c.JSON(http.StatusConflict, checkoutFailedResponse{
			Error:  err.Error(),
			Failed: newLineFailures(report),
		})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to check out"})
		return
	}

	settle(cart, report)
	c.JSON(http.StatusCreated, checkoutResponse{
		Order:  order,
		Failed: newLineFailures(report),
	})
}

func (h *Handler) cart(c *gin.Context) (*catalog.SessionCart, bool) {
	cart, ok := h.carts.Get(c.Param(cartIDParam))
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "cart not found"})
		return nil, false
	}
	return cart, true
}

// refresh points every line at the product's current state. Lines whose
// product has been deleted keep their last copy; checkout reports them.
func (h *Handler) refresh(ctx context.Context, cart *catalog.SessionCart) error {
	for _, line := range cart.Lines() {
		product, found, err := h.service.FetchRaw(ctx, line.Product.ID)
		if err != nil {
			return err
		}
		if found {
			cart.Refresh(&product)
		}
	}
	return nil
}

// settle takes the lines a checkout processed out of the cart. Quantities
// added while the checkout ran stay.
func settle(cart *catalog.SessionCart, report service.ReconcileReport) {
	for _, line := range report.Applied {
		cart.Subtract(line.Product.ID, line.Quantity)
	}
	for _, f := range report.Failed {
		if f.Line.Product != nil {
			cart.Subtract(f.Line.Product.ID, f.Line.Quantity)
		}
	}
}

func newCartResponse(id string, cart *catalog.SessionCart) cartResponse {
	lines := cart.Lines()
	resp := cartResponse{
		ID:    id,
		Lines: make([]cartLineResponse, 0, len(lines)),
		Total: catalog.FormatPrice(cart.Total()),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, cartLineResponse{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: catalog.FormatPrice(line.Product.Price),
			Subtotal:  catalog.FormatPrice(line.Subtotal()),
		})
	}
	return resp
}

func newLineFailures(report service.ReconcileReport) []lineFailureResponse {
	out := make([]lineFailureResponse, 0, len(report.Failed))
	for _, f := range report.Failed {
		var productID int64
		if f.Line.Product != nil {
			productID = f.Line.Product.ID
		}
		out = append(out, lineFailureResponse{
			ProductID: productID,
			Quantity:  f.Line.Quantity,
			Error:     f.Err.Error(),
		})
	}
	return out
}
