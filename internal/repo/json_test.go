package repo_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/repo"
	"github.com/SergeyBogomolovv/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (string, interface {
	Orders(ctx context.Context) []entities.Order
	AppendOrder(ctx context.Context, order entities.Order) error
	SetOrderStatus(ctx context.Context, orderID, status string) (entities.Order, error)
	Sales(ctx context.Context) []entities.Sale
	AppendSale(ctx context.Context, sale entities.Sale) error
	Products(ctx context.Context) []entities.Product
	Partners(ctx context.Context) []entities.Partner
}) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.NewFileStore(logger, config.Store{
		DataDir:      dir,
		ProductsFile: "products.json",
		PartnersFile: "partner-store.json",
		OrdersFile:   "orders.json",
		SalesFile:    "sales.json",
	})
	return dir, repo.NewJSONRepo(logger, s)
}

func TestJSONRepo_Orders(t *testing.T) {
	_, r := newRepo(t)
	ctx := context.Background()

	orders := []entities.Order{
		{
			OrderID:   "ORD-1",
			Items:     []entities.Item{{Name: "Painting", Quantity: 1, Price: entities.NewAmount(500)}},
			Total:     entities.NewAmount(500),
			Name:      "A",
			Status:    entities.StatusPending,
			CreatedAt: "2026-10-17T10:00:00.000Z",
		},
		{
			OrderID: "ORD-2",
			Items:   []entities.Item{{Name: "Frame", Quantity: 2, Price: entities.Amount(`"रु 150"`), Image: "/img/frame.jpg"}},
			Total:   entities.Amount(`"300"`),
			Status:  entities.StatusDelivered,
		},
	}
	for _, o := range orders {
		require.NoError(t, r.AppendOrder(ctx, o))
	}

	assert.Equal(t, orders, r.Orders(ctx))
}

func TestJSONRepo_SetOrderStatus(t *testing.T) {
	dir, r := newRepo(t)
	ctx := context.Background()
	path := filepath.Join(dir, "orders.json")

	stringQuantity := `{"orderId":"ORD-1","items":[{"name":"Frame","quantity":"2","price":"रु 150"}],"total":"300","status":"pending"}`
	extraField := `{"orderId":"ORD-2","items":[],"status":"pending","paymentMethod":"cod","notes":{"gift":true}}`
	scalar := `42`
	content := "[" + stringQuantity + "," + extraField + "," + scalar + "]"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	listed := r.Orders(ctx)
	require.Len(t, listed, 2)
	assert.Equal(t, 2, listed[0].Items[0].Quantity)
	assert.Equal(t, "ORD-2", listed[1].OrderID)

	order, err := r.SetOrderStatus(ctx, "ORD-2", entities.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, "ORD-2", order.OrderID)
	assert.Equal(t, entities.StatusAccepted, order.Status)

	records := readRecords(t, path)
	require.Len(t, records, 3)
	assert.JSONEq(t, stringQuantity, string(records[0]))
	assert.JSONEq(t, `{"orderId":"ORD-2","items":[],"status":"accepted","paymentMethod":"cod","notes":{"gift":true}}`, string(records[1]))
	assert.JSONEq(t, scalar, string(records[2]))

	_, err = r.SetOrderStatus(ctx, "ORD-404", entities.StatusAccepted)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.Len(t, readRecords(t, path), 3)
}

func TestJSONRepo_AppendOrderKeepsStoredRecords(t *testing.T) {
	dir, r := newRepo(t)
	ctx := context.Background()
	path := filepath.Join(dir, "orders.json")

	stored := `{"orderId":"ORD-1","items":[{"quantity":"2"}],"status":"pending","paymentMethod":"cod"}`
	require.NoError(t, os.WriteFile(path, []byte("["+stored+",null]"), 0o644))

	require.NoError(t, r.AppendOrder(ctx, entities.Order{OrderID: "ORD-2", Items: []entities.Item{}, Status: entities.StatusPending}))

	records := readRecords(t, path)
	require.Len(t, records, 3)
	assert.JSONEq(t, stored, string(records[0]))
	assert.JSONEq(t, "null", string(records[1]))
	assert.Contains(t, string(records[2]), `"orderId":"ORD-2"`)
}

func readRecords(t *testing.T, path string) []json.RawMessage {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []json.RawMessage
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestJSONRepo_Catalog(t *testing.T) {
	dir, r := newRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"),
		[]byte(`[{"id":"p1","slug":"fish","price":"रु 500"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "partner-store.json"),
		[]byte(`[{"name":"Janakpur Arts"}]`), 0o644))

	products := r.Products(context.Background())
	require.Len(t, products, 1)
	assert.Equal(t, "fish", products[0]["slug"])

	partners := r.Partners(context.Background())
	require.Len(t, partners, 1)
	assert.Equal(t, "Janakpur Arts", partners[0]["name"])
}

func TestJSONRepo_Sales(t *testing.T) {
	_, r := newRepo(t)
	ctx := context.Background()

	assert.Empty(t, r.Sales(ctx))

	sale := entities.Sale{OrderID: "ORD-1", Total: entities.NewAmount(500), Items: []entities.Item{}, DeliveredAt: "2026-10-17T10:00:00.000Z"}
	require.NoError(t, r.AppendSale(ctx, sale))
	require.NoError(t, r.AppendSale(ctx, sale))
	assert.Equal(t, []entities.Sale{sale, sale}, r.Sales(ctx))
}
