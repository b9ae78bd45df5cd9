package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("storefront/handler")

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaHandler takes orders submitted by partner stores from the intake
// topic. Messages that cannot be turned into an order go to "<topic>-dlq".
type KafkaHandler struct {
	logger   *slog.Logger
	reader   messageReader
	dlq      messageWriter
	validate *validator.Validate
	orders   OrderService
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, orders OrderService) *KafkaHandler {
	return &KafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.IntakeTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		orders:   orders,
	}
}

func (h *KafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.handle(ctx, m)
	}
}

func (h *KafkaHandler) handle(ctx context.Context, m kafka.Message) {
	intakeInProgress.Inc()
	defer intakeInProgress.Dec()
	start := time.Now()

	ctx = otel.GetTextMapPropagator().Extract(ctx, events.Carrier(&m))
	ctx, span := tracer.Start(ctx, "process "+m.Topic,
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			semconv.MessagingSystemKafka,
			semconv.MessagingOperationName("process"),
			semconv.MessagingOperationTypeDeliver,
			semconv.MessagingDestinationName(m.Topic),
			semconv.MessagingKafkaMessageOffset(int(m.Offset)),
			semconv.MessagingDestinationPartitionID(strconv.Itoa(m.Partition)),
			semconv.MessagingKafkaMessageKey(string(m.Key)),
		),
	)
	defer span.End()

	orderID, err := h.createOrder(ctx, m)
	if err != nil {
		intakeFailed.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		h.logger.ErrorContext(ctx, "failed to handle message", slog.Any("error", err), slog.Int64("offset", m.Offset))

		// kafka-go retries failed writes on its own
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.ErrorContext(ctx, "failed to write message to DLQ", slog.Any("error", err))
			return
		}
		intakeDLQ.Inc()
	} else {
		intakeProcessed.Inc()
		h.logger.InfoContext(ctx, "partner order accepted", slog.String("order_id", orderID))
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.ErrorContext(ctx, "failed to commit message", slog.Any("error", err))
	}
	intakeDuration.Observe(time.Since(start).Seconds())
}

func (h *KafkaHandler) createOrder(ctx context.Context, m kafka.Message) (string, error) {
	var req CreateOrderRequest
	if err := json.Unmarshal(m.Value, &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal order: %w", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid order data: %w", err)
	}
	return h.orders.CreateOrder(ctx, req.ToEntity())
}

func (h *KafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   m.Topic + "-dlq",
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *KafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
