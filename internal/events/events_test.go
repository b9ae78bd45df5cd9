package events

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage(t *testing.T) {
	at := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	ev := Event{Type: SaleRecorded, OrderID: "ORD-1", Total: entities.NewAmount(500), At: at}

	m, err := message(ev)
	require.NoError(t, err)

	assert.Equal(t, []byte("ORD-1"), m.Key)
	assert.Equal(t, at, m.Time)
	assert.JSONEq(t, `{"type":"sale.recorded","orderId":"ORD-1","total":500,"at":"2026-10-17T10:00:00Z"}`, string(m.Value))
	require.Len(t, m.Headers, 1)
	assert.Equal(t, "sale.recorded", string(m.Headers[0].Value))
}

func TestHeaderCarrier(t *testing.T) {
	m := kafka.Message{Headers: []kafka.Header{{Key: "type", Value: []byte("order.created")}}}
	c := headerCarrier{msg: &m}

	c.Set("traceparent", "00-abc-01")
	c.Set("type", "sale.recorded")

	assert.Equal(t, "00-abc-01", c.Get("traceparent"))
	assert.Equal(t, "sale.recorded", c.Get("type"))
	assert.Empty(t, c.Get("missing"))
	assert.Equal(t, []string{"type", "traceparent"}, c.Keys())
}

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p := New(logger, config.Kafka{})
	assert.IsType(t, Noop{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{Type: OrderCreated}))
	assert.NoError(t, p.Close())

	kp := New(logger, config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "storefront.orders"})
	require.IsType(t, &kafkaPublisher{}, kp)
	assert.Equal(t, "storefront.orders", kp.(*kafkaPublisher).writer.Topic)
	assert.NoError(t, kp.Close())
}
