package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"product-catalog/internal/catalog"
	"product-catalog/internal/catalog/service"

	"github.com/gin-gonic/gin"
)

type ProductService interface {
	ListAll(ctx context.Context) ([]catalog.SubmittedProduct, error)
	GetByID(ctx context.Context, id int64) (catalog.SubmittedProduct, bool, error)
	FetchRaw(ctx context.Context, id int64) (catalog.Product, bool, error)
	Save(ctx context.Context, input catalog.SubmittedProduct) (catalog.Product, error)
	Delete(ctx context.Context, id int64) error
	Checkout(ctx context.Context, cart catalog.Cart) (catalog.Order, service.ReconcileReport, error)
	Order(ctx context.Context, id int64) (catalog.Order, bool, error)
}

type Handler struct {
	service  ProductService
	carts    *CartStore
	messages ErrorMessageResolver
}

func NewHandler(svc ProductService, carts *CartStore, messages ErrorMessageResolver) *Handler {
	return &Handler{
		service:  svc,
		carts:    carts,
		messages: messages,
	}
}

// productRequest is the form a client submits. Every field is raw text and
// is validated by the service, so none is marked required here.
type productRequest struct {
	Name        string `json:"name" example:"Kettle"`
	Description string `json:"description" example:"Stainless steel kettle"`
	Details     string `json:"details" example:"1.7 litres, 2200 W"`
	Price       string `json:"price" example:"24.99"`
	Stock       string `json:"stock" example:"12"`
}

func (r productRequest) submission(id int64) catalog.SubmittedProduct {
	return catalog.SubmittedProduct{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Details:     r.Details,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

type errorResponse struct {
	Error string `json:"error" example:"product not found"`
}

type fieldError struct {
	Key     catalog.ErrorKind `json:"key" swaggertype:"string" example:"MissingName"`
	Message string            `json:"message" example:"Please enter a name"`
}

type validationErrorResponse struct {
	Errors []fieldError `json:"errors"`
}

// ListProducts godoc
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   catalog.SubmittedProduct
// @Failure      500  {object}  errorResponse
// @Router       /products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get products"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetProduct godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  catalog.SubmittedProduct
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid product id")
	if !ok {
		return
	}

	vm, found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get product"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: catalog.ErrNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, vm)
}

// CreateProduct godoc
// @Summary      Create a new product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Product data"
// @Success      201   {object}  catalog.SubmittedProduct
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.service.Save(c.Request.Context(), req.submission(0))
	if err != nil {
		h.respondSaveError(c, err, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, catalog.ToViewModel(product))
}

// UpdateProduct godoc
// @Summary      Replace a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Product ID"
// @Param        body  body      productRequest  true  "Product data"
// @Success      200   {object}  catalog.SubmittedProduct
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  validationErrorResponse
// @Failure      500   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid product id")
	if !ok {
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	product, err := h.service.Save(c.Request.Context(), req.submission(id))
	if err != nil {
		h.respondSaveError(c, err, "failed to update product")
		return
	}

	c.JSON(http.StatusOK, catalog.ToViewModel(product))
}

// DeleteProduct godoc
// @Summary      Delete a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid product id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: catalog.ErrNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetOrder godoc
// @Summary      Get a recorded order
// @Tags         orders
// @Produce      json
// @Param        id   path      int  true  "Order ID"
// @Success      200  {object}  catalog.Order
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id", "invalid order id")
	if !ok {
		return
	}

	order, found, err := h.service.Order(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to get order"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, errorResponse{Error: "order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) respondSaveError(c *gin.Context, err error, fallback string) {
	var verr *catalog.ValidationError
	switch {
	case errors.As(err, &verr):
		resp := validationErrorResponse{Errors: make([]fieldError, 0, len(verr.Kinds))}
		for _, kind := range verr.Kinds {
			resp.Errors = append(resp.Errors, fieldError{Key: kind, Message: h.messages.Resolve(kind)})
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, catalog.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: catalog.ErrNotFound.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}

// parseID reads a positive integer path parameter, answering 400 itself when
// it is malformed.
func parseID(c *gin.Context, param, message string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: message})
		return 0, false
	}
	return id, true
}
