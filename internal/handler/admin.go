package handler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/admin"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/sales"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

// BillCache keeps rendered bill PDFs by order id.
type BillCache interface {
	Get(orderID string) ([]byte, bool)
	Set(orderID string, pdf []byte)
}

type AdminHandler struct {
	logger   *slog.Logger
	orders   OrderService
	renderer *admin.Renderer
	bills    BillCache
	loc      *time.Location
}

func NewAdminHandler(logger *slog.Logger, orders OrderService, renderer *admin.Renderer, bills BillCache, loc *time.Location) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		orders:   orders,
		renderer: renderer,
		bills:    bills,
		loc:      loc,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", h.Dashboard)
		r.Get("/orders/{orderId}", h.Detail)
		r.Get("/orders/{orderId}/bill", h.Bill)
		r.Get("/orders/{orderId}/bill.pdf", h.BillPDF)
		r.Post("/orders/{orderId}/status", h.UpdateStatus)
	})
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		orders  []entities.Order
		records []entities.Sale
		report  sales.Report
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders = h.orders.ListOrders(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		records = h.orders.ListSales(gctx)
		report = h.orders.SalesReport(gctx)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		h.fail(w, r, "failed to load dashboard", err)
		return
	}

	d := admin.NewDashboard(orders, records, report, h.loc)
	d.Message = r.URL.Query().Get("error")

	h.render(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Dashboard(buf, d)
	})
}

func (h *AdminHandler) Detail(w http.ResponseWriter, r *http.Request) {
	order, ok := h.findOrder(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Detail(buf, admin.NewDetail(order, h.loc))
	})
}

func (h *AdminHandler) Bill(w http.ResponseWriter, r *http.Request) {
	order, ok := h.findOrder(w, r)
	if !ok {
		return
	}
	h.render(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.renderer.Bill(buf, admin.NewBill(order, h.loc))
	})
}

func (h *AdminHandler) BillPDF(w http.ResponseWriter, r *http.Request) {
	order, ok := h.findOrder(w, r)
	if !ok {
		return
	}

	pdf, ok := h.bills.Get(order.OrderID)
	if !ok {
		var buf bytes.Buffer
		if err := admin.WriteBillPDF(&buf, admin.NewBill(order, h.loc)); err != nil {
			h.fail(w, r, "failed to build bill pdf", err)
			return
		}
		pdf = buf.Bytes()
		h.bills.Set(order.OrderID, pdf)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="bill-`+order.OrderID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// UpdateStatus applies a status change from a dashboard form and sends the
// browser back to the dashboard.
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")
	status := r.FormValue("status")

	target := "/admin"
	err := h.orders.UpdateStatus(ctx, orderID, status)
	switch {
	case errors.Is(err, entities.ErrMissingStatus):
		target += "?error=" + url.QueryEscape("Missing status")
	case errors.Is(err, entities.ErrOrderNotFound):
		target += "?error=" + url.QueryEscape("Order not found")
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		target += "?error=" + url.QueryEscape("Failed to update status")
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *AdminHandler) findOrder(w http.ResponseWriter, r *http.Request) (entities.Order, bool) {
	orderID := chi.URLParam(r, "orderId")
	if order, ok := lookupOrder(r.Context(), h.orders, orderID); ok {
		return order, true
	}

	h.render(w, r, http.StatusNotFound, func(buf *bytes.Buffer) error {
		return h.renderer.NotFound(buf, orderID)
	})
	return entities.Order{}, false
}

func lookupOrder(ctx context.Context, svc OrderService, orderID string) (entities.Order, bool) {
	for _, o := range svc.ListOrders(ctx) {
		if o.OrderID == orderID {
			return o, true
		}
	}
	return entities.Order{}, false
}

// render buffers the page so a template error still yields a clean 500.
func (h *AdminHandler) render(w http.ResponseWriter, r *http.Request, code int, fn func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		h.fail(w, r, "failed to render admin page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func (h *AdminHandler) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
