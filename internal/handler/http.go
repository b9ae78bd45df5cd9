package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/sales"
	"github.com/SergeyBogomolovv/storefront/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	ListOrders(ctx context.Context) []entities.Order
	CreateOrder(ctx context.Context, order entities.Order) (string, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	ListSales(ctx context.Context) []entities.Sale
	SalesReport(ctx context.Context) sales.Report
}

type CatalogService interface {
	Products(ctx context.Context) []entities.Product
	Product(ctx context.Context, slug string) (entities.Product, error)
	Partners(ctx context.Context) []entities.Partner
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	catalog  CatalogService
	submit   func(http.Handler) http.Handler
}

// NewHTTPHandler serves the JSON API. submit wraps order creation, which is
// where rate limiting goes.
func NewHTTPHandler(logger *slog.Logger, orders OrderService, catalog CatalogService, submit func(http.Handler) http.Handler) *HTTPHandler {
	if submit == nil {
		submit = func(next http.Handler) http.Handler { return next }
	}
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		catalog:  catalog,
		submit:   submit,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{slug}", h.GetProduct)
		r.Get("/partners", h.ListPartners)

		r.Get("/orders", h.ListOrders)
		r.With(h.submit).Post("/orders", h.CreateOrder)
		r.Patch("/orders/{orderId}", h.UpdateStatus)

		r.Get("/sales", h.ListSales)
		r.Get("/sales/summary", h.SalesSummary)

		r.NotFound(h.NotFound)
		r.MethodNotAllowed(h.NotFound)
	})
}

// ListProducts returns the catalog.
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   object
// @Router       /api/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Products(r.Context()), http.StatusOK)
}

// GetProduct returns one product by slug or id.
// @Summary      Get product
// @Tags         catalog
// @Produce      json
// @Param        slug  path      string  true  "Product slug or id"
// @Success      200   {object}  object
// @Failure      404   {object}  utils.ErrorResponse "Product not found"
// @Router       /api/products/{slug} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	product, err := h.catalog.Product(ctx, slug)
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "Product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("slug", slug))
		utils.WriteError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

// ListPartners returns the partner stores.
// @Summary      List partners
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   object
// @Router       /api/partners [get]
func (h *HTTPHandler) ListPartners(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.catalog.Partners(r.Context()), http.StatusOK)
}

// ListOrders returns every order.
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   Order
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders := h.orders.ListOrders(r.Context())

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// CreateOrder places an order.
// @Summary      Create order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      CreateOrderRequest  true  "Order"
// @Success      200    {object}  CreateOrderResponse
// @Failure      400    {object}  utils.ValidationErrorResponse "Invalid order payload"
// @Failure      429    {object}  utils.ErrorResponse "Too many requests"
// @Failure      500    {object}  utils.ErrorResponse "Failed to persist order"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "Invalid order payload", err)
		return
	}

	orderID, err := h.orders.CreateOrder(ctx, req.ToEntity())
	if errors.Is(err, entities.ErrInvalidOrder) {
		utils.WriteError(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "Failed to persist order", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CreateOrderResponse{OrderID: orderID}, http.StatusOK)
}

// UpdateStatus changes an order's status.
// @Summary      Update order status
// @Description  Moving an order to delivered records a sale.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderId  path      string               true  "Order id"
// @Param        status   body      UpdateStatusRequest  true  "New status"
// @Success      200      {object}  OKResponse
// @Failure      400      {object}  utils.ValidationErrorResponse "Missing status"
// @Failure      404      {object}  utils.ErrorResponse "Order not found"
// @Failure      500      {object}  utils.ErrorResponse "Failed to persist order status"
// @Router       /api/orders/{orderId} [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "Missing status", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, "Missing status", err)
		return
	}

	err := h.orders.UpdateStatus(ctx, orderID, req.Status)
	switch {
	case errors.Is(err, entities.ErrMissingStatus):
		utils.WriteError(w, "Missing status", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "Order not found", http.StatusNotFound)
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "Failed to persist order status", http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, OKResponse{OK: true}, http.StatusOK)
	}
}

// ListSales returns every recorded sale.
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Success      200  {array}   Sale
// @Router       /api/sales [get]
func (h *HTTPHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	records := h.orders.ListSales(r.Context())

	res := make([]Sale, 0, len(records))
	for _, s := range records {
		res = append(res, SaleEntityToJSON(s))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// SalesSummary returns sales totals and daily series.
// @Summary      Sales summary
// @Tags         sales
// @Produce      json
// @Success      200  {object}  sales.Report
// @Router       /api/sales/summary [get]
func (h *HTTPHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.orders.SalesReport(r.Context()), http.StatusOK)
}

func (h *HTTPHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "API route not found", http.StatusNotFound)
}
