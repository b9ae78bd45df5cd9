package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/SergeyBogomolovv/storefront/internal/ident"
	"github.com/SergeyBogomolovv/storefront/internal/sales"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("storefront/service")

// OrderRepo writes never re-encode records they did not change.
type OrderRepo interface {
	Orders(ctx context.Context) []entities.Order
	AppendOrder(ctx context.Context, order entities.Order) error
	SetOrderStatus(ctx context.Context, orderID, status string) (entities.Order, error)
	Sales(ctx context.Context) []entities.Sale
	AppendSale(ctx context.Context, sale entities.Sale) error
}

type Publisher interface {
	Publish(ctx context.Context, ev events.Event) error
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	ids       ident.Generator
	publisher Publisher
	loc       *time.Location
	now       func() time.Time
}

type Option func(*orderService)

// WithClock replaces time.Now, which stamps createdAt and deliveredAt and
// anchors the sales report.
func WithClock(now func() time.Time) Option {
	return func(s *orderService) { s.now = now }
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	ids ident.Generator,
	publisher Publisher,
	loc *time.Location,
	opts ...Option,
) *orderService {
	s := &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		ids:       ids,
		publisher: publisher,
		loc:       loc,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *orderService) ListOrders(ctx context.Context) []entities.Order {
	ctx, span := tracer.Start(ctx, "OrderService.ListOrders")
	defer span.End()

	orders := s.repo.Orders(ctx)
	span.SetAttributes(attribute.Int("orders.count", len(orders)))
	return orders
}

func (s *orderService) CreateOrder(ctx context.Context, order entities.Order) (string, error) {
	ctx, span := tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if len(order.Items) == 0 {
		return "", entities.ErrInvalidOrder
	}

	now := s.now()
	order.OrderID = s.ids.NewID()
	order.CreatedAt = entities.FormatTime(now)
	if order.Status == "" {
		order.Status = entities.StatusPending
	}
	span.SetAttributes(attribute.String("order.id", order.OrderID))

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.AppendOrder(ctx, order); err != nil {
			storeWriteErrors.WithLabelValues("orders").Inc()
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		fail(span, err)
		return "", err
	}

	ordersCreated.Inc()
	s.logger.InfoContext(ctx, "order created", slog.String("order_id", order.OrderID), slog.Int("items", len(order.Items)))
	s.publish(ctx, events.Event{
		Type:    events.OrderCreated,
		OrderID: order.OrderID,
		Status:  order.Status,
		Total:   order.Total,
		At:      now,
	})
	return order.OrderID, nil
}

// UpdateStatus sets the status of one order. Moving an order to delivered
// appends a sale in the same unit of work, every time it happens.
func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	ctx, span := tracer.Start(ctx, "OrderService.UpdateStatus", trace.WithAttributes(
		attribute.String("order.id", orderID),
		attribute.String("order.status", status),
	))
	defer span.End()

	if status == "" {
		return entities.ErrMissingStatus
	}

	now := s.now()
	var sale *entities.Sale

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.SetOrderStatus(ctx, orderID, status)
		if errors.Is(err, entities.ErrOrderNotFound) {
			return err
		}
		if err != nil {
			storeWriteErrors.WithLabelValues("orders").Inc()
			return fmt.Errorf("failed to save orders: %w", err)
		}

		if status != entities.StatusDelivered {
			return nil
		}

		rec := entities.NewSale(order, now)
		if err := s.repo.AppendSale(ctx, rec); err != nil {
			storeWriteErrors.WithLabelValues("sales").Inc()
			return fmt.Errorf("failed to save sale: %w", err)
		}
		sale = &rec
		return nil
	})
	if err != nil {
		fail(span, err)
		return err
	}

	statusUpdates.WithLabelValues(status).Inc()
	s.logger.InfoContext(ctx, "order status updated", slog.String("order_id", orderID), slog.String("status", status))
	s.publish(ctx, events.Event{
		Type:    events.OrderStatusChanged,
		OrderID: orderID,
		Status:  status,
		At:      now,
	})

	if sale != nil {
		salesRecorded.Inc()
		s.logger.InfoContext(ctx, "sale recorded", slog.String("order_id", orderID))
		s.publish(ctx, events.Event{
			Type:    events.SaleRecorded,
			OrderID: orderID,
			Total:   sale.Total,
			At:      now,
		})
	}
	return nil
}

func (s *orderService) ListSales(ctx context.Context) []entities.Sale {
	ctx, span := tracer.Start(ctx, "OrderService.ListSales")
	defer span.End()

	return s.repo.Sales(ctx)
}

func (s *orderService) SalesReport(ctx context.Context) sales.Report {
	ctx, span := tracer.Start(ctx, "OrderService.SalesReport")
	defer span.End()

	return sales.Summarize(s.repo.Sales(ctx), s.now(), s.loc)
}

func (s *orderService) publish(ctx context.Context, ev events.Event) {
	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "failed to publish event",
			slog.String("type", string(ev.Type)),
			slog.String("order_id", ev.OrderID),
			slog.Any("error", err),
		)
	}
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
