package repo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/store"
)

type jsonRepo struct {
	logger *slog.Logger
	store  store.Store
}

func NewJSONRepo(logger *slog.Logger, s store.Store) *jsonRepo {
	return &jsonRepo{
		logger: logger.With(slog.String("component", "repo")),
		store:  s,
	}
}

func (r *jsonRepo) Orders(ctx context.Context) []entities.Order {
	return decodeAll[entities.Order](ctx, r.logger, store.Orders, r.store.Read(ctx, store.Orders))
}

// AppendOrder adds one order to the end of the collection. Stored records
// are written back as they were read.
func (r *jsonRepo) AppendOrder(ctx context.Context, order entities.Order) error {
	return r.appendRecord(ctx, store.Orders, order)
}

// SetOrderStatus rewrites the status key of the first order with the given
// id and leaves every other record and field untouched. It returns the
// updated order.
func (r *jsonRepo) SetOrderStatus(ctx context.Context, orderID, status string) (entities.Order, error) {
	records := r.store.Read(ctx, store.Orders)

	idx, fields := -1, map[string]json.RawMessage(nil)
	for i, raw := range records {
		var rec map[string]json.RawMessage
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		var id string
		if err := json.Unmarshal(rec["orderId"], &id); err == nil && id == orderID {
			idx, fields = i, rec
			break
		}
	}
	if idx < 0 {
		return entities.Order{}, entities.ErrOrderNotFound
	}

	value, err := json.Marshal(status)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to encode status: %w", err)
	}
	fields["status"] = value
	patched, err := json.Marshal(fields)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to encode order %s: %w", orderID, err)
	}
	records[idx] = patched

	if err := r.store.Write(ctx, store.Orders, records); err != nil {
		return entities.Order{}, err
	}

	order, _ := decode[entities.Order](ctx, r.logger, store.Orders, idx, patched)
	return order, nil
}

func (r *jsonRepo) Sales(ctx context.Context) []entities.Sale {
	return decodeAll[entities.Sale](ctx, r.logger, store.Sales, r.store.Read(ctx, store.Sales))
}

func (r *jsonRepo) AppendSale(ctx context.Context, sale entities.Sale) error {
	return r.appendRecord(ctx, store.Sales, sale)
}

func (r *jsonRepo) Products(ctx context.Context) []entities.Product {
	return decodeAll[entities.Product](ctx, r.logger, store.Products, r.store.Read(ctx, store.Products))
}

func (r *jsonRepo) Partners(ctx context.Context) []entities.Partner {
	return decodeAll[entities.Partner](ctx, r.logger, store.Partners, r.store.Read(ctx, store.Partners))
}

func (r *jsonRepo) appendRecord(ctx context.Context, c store.Collection, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", c, err)
	}
	return r.store.Write(ctx, c, append(r.store.Read(ctx, c), data))
}

// decodeAll skips only records that are not JSON objects. A record with a
// field of an unexpected type is kept with that field left zero.
func decodeAll[T any](ctx context.Context, logger *slog.Logger, c store.Collection, raws []json.RawMessage) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		if v, ok := decode[T](ctx, logger, c, i, raw); ok {
			out = append(out, v)
		}
	}
	return out
}

func decode[T any](ctx context.Context, logger *slog.Logger, c store.Collection, i int, raw json.RawMessage) (T, bool) {
	var v T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		logger.WarnContext(ctx, "skipping record that is not an object",
			slog.String("collection", string(c)),
			slog.Int("index", i),
		)
		return v, false
	}

	err := json.Unmarshal(raw, &v)
	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil:
		return v, true
	case errors.As(err, &typeErr):
		logger.WarnContext(ctx, "record has fields of unexpected type",
			slog.String("collection", string(c)),
			slog.Int("index", i),
			slog.Any("error", err),
		)
		return v, true
	default:
		logger.WarnContext(ctx, "skipping malformed record",
			slog.String("collection", string(c)),
			slog.Int("index", i),
			slog.Any("error", err),
		)
		return v, false
	}
}
