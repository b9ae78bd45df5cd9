package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/store"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (string, store.Store) {
	t.Helper()
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return dir, store.NewFileStore(logger, config.Store{
		DataDir:      dir,
		ProductsFile: "products.json",
		PartnersFile: "partner-store.json",
		OrdersFile:   "orders.json",
		SalesFile:    "sales.json",
	})
}

func TestFileStore_Read(t *testing.T) {
	testCases := []struct {
		name    string
		content *string
		want    int
	}{
		{name: "missing file", content: nil, want: 0},
		{name: "empty file", content: ptr(""), want: 0},
		{name: "invalid json", content: ptr("{not json"), want: 0},
		{name: "object instead of array", content: ptr(`{"a":1}`), want: 0},
		{name: "null", content: ptr("null"), want: 0},
		{name: "two records", content: ptr(`[{"a":1},{"b":2}]`), want: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir, s := newStore(t)
			if tc.content != nil {
				require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.json"), []byte(*tc.content), 0o644))
			}

			got := s.Read(context.Background(), store.Orders)

			assert.NotNil(t, got)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	_, s := newStore(t)
	ctx := context.Background()

	records := []json.RawMessage{
		json.RawMessage(`{"orderId":"ORD-2","total":20}`),
		json.RawMessage(`{"orderId":"ORD-1","total":"रु 10"}`),
		json.RawMessage(`{"orderId":"ORD-3","items":[{"name":"x"}]}`),
	}
	require.NoError(t, s.Write(ctx, store.Sales, records))

	got := s.Read(ctx, store.Sales)
	require.Len(t, got, len(records))
	for i := range records {
		assert.JSONEq(t, string(records[i]), string(got[i]))
	}
}

func TestFileStore_WriteIsIndented(t *testing.T) {
	dir, s := newStore(t)
	require.NoError(t, s.Write(context.Background(), store.Orders, []json.RawMessage{json.RawMessage(`{"a":1}`)}))

	data, err := os.ReadFile(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"a\": 1\n  }\n]", string(data))
}

func TestFileStore_WriteNil(t *testing.T) {
	dir, s := newStore(t)
	require.NoError(t, s.Write(context.Background(), store.Orders, nil))

	data, err := os.ReadFile(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir, s := newStore(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "orders.json"), 0o755))

	err := s.Write(context.Background(), store.Orders, []json.RawMessage{json.RawMessage(`{}`)})
	assert.Error(t, err)
}

func TestFileStore_UnknownCollection(t *testing.T) {
	_, s := newStore(t)

	assert.Empty(t, s.Read(context.Background(), store.Collection("nope")))
	assert.ErrorIs(t, s.Write(context.Background(), store.Collection("nope"), nil), store.ErrUnknownCollection)
}

func TestFileStore_Rollback(t *testing.T) {
	dir, s := newStore(t)
	ctx := context.Background()

	original := []json.RawMessage{json.RawMessage(`{"orderId":"ORD-1","status":"accepted"}`)}
	require.NoError(t, s.Write(ctx, store.Orders, original))

	errBoom := errors.New("boom")
	err := trm.NewManager().Do(ctx, func(ctx context.Context) error {
		if err := s.Write(ctx, store.Orders, []json.RawMessage{json.RawMessage(`{"orderId":"ORD-1","status":"delivered"}`)}); err != nil {
			return err
		}
		if err := s.Write(ctx, store.Sales, []json.RawMessage{json.RawMessage(`{"orderId":"ORD-1"}`)}); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got := s.Read(ctx, store.Orders)
	require.Len(t, got, 1)
	assert.JSONEq(t, string(original[0]), string(got[0]))

	_, statErr := os.Stat(filepath.Join(dir, "sales.json"))
	assert.True(t, os.IsNotExist(statErr), "sales file created inside the failed unit must be removed")
}

func TestFileStore_Commit(t *testing.T) {
	_, s := newStore(t)
	ctx := context.Background()

	err := trm.NewManager().Do(ctx, func(ctx context.Context) error {
		return s.Write(ctx, store.Orders, []json.RawMessage{json.RawMessage(`{"orderId":"ORD-1"}`)})
	})
	require.NoError(t, err)
	assert.Len(t, s.Read(ctx, store.Orders), 1)
}

func ptr(s string) *string {
	return &s
}
