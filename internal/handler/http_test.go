package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront/internal/sales"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBehavior func(orders *mocks.MockOrderService, catalog *mocks.MockCatalogService)

func newAPI(t *testing.T, behavior MockBehavior) http.Handler {
	t.Helper()
	orders := mocks.NewMockOrderService(t)
	catalog := mocks.NewMockCatalogService(t)
	behavior(orders, catalog)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, orders, catalog, nil)

	r := chi.NewRouter()
	h.Init(r)
	return r
}

func serve(h http.Handler, method, target, body string) (int, string) {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr.Code, rr.Body.String()
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"items":[{"name":"Painting","quantity":1,"price":500}],"total":500,"name":"A"}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Name == "A" && len(o.Items) == 1 && o.Items[0].Price.String() == "500" && o.Total.String() == "500"
					})).
					Return("ORD-1700000000000", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"orderId":"ORD-1700000000000"}`,
		},
		{
			name: "formatted price string is kept",
			body: `{"items":[{"name":"Fish","quantity":2,"price":"रु 1,200"}],"total":"2400"}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.Order) bool {
						return o.Items[0].Price.String() == "रु 1,200"
					})).
					Return("ORD-2", nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orderId":"ORD-2"`,
		},
		{
			name:         "empty items",
			body:         `{"items":[],"total":0}`,
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"Invalid order payload"`,
		},
		{
			name:         "missing items",
			body:         `{"name":"A"}`,
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Items":"required"`,
		},
		{
			name:         "items not a list",
			body:         `{"items":"painting"}`,
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Invalid order payload"}`,
		},
		{
			name:         "malformed json",
			body:         `{"items":`,
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `{"error":"Invalid order payload"}`,
		},
		{
			name: "persist failure",
			body: `{"items":[{"name":"Painting","quantity":1,"price":500}]}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return("", errors.New("disk full")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to persist order"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newAPI(t, tc.mockBehavior)

			status, body := serve(api, http.MethodPost, "/api/orders", tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		body         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: "ORD-1",
			body:    `{"status":"delivered"}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().UpdateStatus(mock.Anything, "ORD-1", "delivered").Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:         "missing status",
			orderID:      "ORD-1",
			body:         `{}`,
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"Missing status"`,
		},
		{
			name:         "no body",
			orderID:      "ORD-1",
			mockBehavior: func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"error":"Missing status"`,
		},
		{
			name:    "not found",
			orderID: "ORD-404",
			body:    `{"status":"accepted"}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().UpdateStatus(mock.Anything, "ORD-404", "accepted").Return(entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Order not found"}`,
		},
		{
			name:    "persist failure",
			orderID: "ORD-1",
			body:    `{"status":"delivered"}`,
			mockBehavior: func(orders *mocks.MockOrderService, _ *mocks.MockCatalogService) {
				orders.EXPECT().UpdateStatus(mock.Anything, "ORD-1", "delivered").Return(errors.New("disk full")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to persist order status"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newAPI(t, tc.mockBehavior)

			status, body := serve(api, http.MethodPatch, "/api/orders/"+tc.orderID, tc.body)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_GetProduct(t *testing.T) {
	testCases := []struct {
		name         string
		slug         string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			slug: "fish",
			mockBehavior: func(_ *mocks.MockOrderService, catalog *mocks.MockCatalogService) {
				catalog.EXPECT().Product(mock.Anything, "fish").Return(entities.Product{"slug": "fish", "price": 1200.0}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"slug":"fish"`,
		},
		{
			name: "not found",
			slug: "tiger",
			mockBehavior: func(_ *mocks.MockOrderService, catalog *mocks.MockCatalogService) {
				catalog.EXPECT().Product(mock.Anything, "tiger").Return(nil, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Product not found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := newAPI(t, tc.mockBehavior)

			status, body := serve(api, http.MethodGet, "/api/products/"+tc.slug, "")

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_Lists(t *testing.T) {
	api := newAPI(t, func(orders *mocks.MockOrderService, catalog *mocks.MockCatalogService) {
		catalog.EXPECT().Products(mock.Anything).Return([]entities.Product{{"slug": "fish"}}).Once()
		catalog.EXPECT().Partners(mock.Anything).Return([]entities.Partner{}).Once()
		orders.EXPECT().ListOrders(mock.Anything).Return([]entities.Order{
			{OrderID: "ORD-1", Status: "pending", Total: entities.NewAmount(500), Items: []entities.Item{{Name: "Painting", Quantity: 1, Price: entities.NewAmount(500)}}},
		}).Once()
		orders.EXPECT().ListSales(mock.Anything).Return(nil).Once()
		orders.EXPECT().SalesReport(mock.Anything).Return(sales.Report{Day: sales.Bucket{Total: 500, Count: 1}}).Once()
	})

	status, body := serve(api, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"slug":"fish"}]`, body)

	status, body = serve(api, http.MethodGet, "/api/partners", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = serve(api, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusOK, status)
	var orders []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0]["orderId"])
	assert.Equal(t, 500.0, orders[0]["total"])

	status, body = serve(api, http.MethodGet, "/api/sales", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = serve(api, http.MethodGet, "/api/sales/summary", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"day":{"total":500,"count":1}`)
}

func TestHTTPHandler_NotFound(t *testing.T) {
	api := newAPI(t, func(_ *mocks.MockOrderService, _ *mocks.MockCatalogService) {})

	for _, target := range []string{"/api/unknown", "/api/orders/ORD-1"} {
		status, body := serve(api, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, status, target)
		assert.JSONEq(t, `{"error":"API route not found"}`, body, target)
	}
}
