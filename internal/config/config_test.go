package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "3000", conf.Http.Port)
	assert.Equal(t, []string{"*"}, conf.Cors.AllowedOrigins)
	assert.Equal(t, "server", conf.Store.DataDir)
	assert.Equal(t, "partner-store.json", conf.Store.PartnersFile)
	assert.Equal(t, "pages", conf.Static.Dir)
	assert.Equal(t, "timestamp", conf.Orders.IDStrategy)
	assert.Empty(t, conf.Kafka.Brokers)
	assert.Empty(t, conf.Tracing.Endpoint)
	assert.Empty(t, conf.Kafka.IntakeTopic)
	assert.Equal(t, 5.0, conf.Orders.RateLimit)
	assert.Equal(t, 10, conf.Orders.RateBurst)
	assert.Equal(t, 100, conf.BillCache.Capacity)
	assert.Equal(t, time.Local, conf.Location())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_CORS_ORIGINS", "http://localhost:3000,https://shop.example.com")
	t.Setenv("KAFKA_BROKERS", "localhost:9092, kafka:9092")
	t.Setenv("TIMEZONE", "Asia/Kathmandu")
	t.Setenv("ORDER_ID_STRATEGY", "uuid")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")
	t.Setenv("ORDER_RATE_LIMIT", "0.5")
	t.Setenv("ORDER_RATE_BURST", "not-a-number")
	t.Setenv("KAFKA_INTAKE_TOPIC", "partner.orders")

	conf := config.New()

	require.NoError(t, conf.Validate())
	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, []string{"localhost:9092", "kafka:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, "Asia/Kathmandu", conf.Location().String())
	assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
	assert.Equal(t, 0.5, conf.Orders.RateLimit)
	assert.Equal(t, 10, conf.Orders.RateBurst)
	assert.Equal(t, "partner.orders", conf.Kafka.IntakeTopic)
	assert.Equal(t, "storefront", conf.Kafka.GroupID)
}

func TestValidate_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown env", key: "ENV", val: "qa"},
		{name: "port not numeric", key: "PORT", val: "http"},
		{name: "bad origin", key: "ALLOWED_CORS_ORIGINS", val: "not a url"},
		{name: "unknown id strategy", key: "ORDER_ID_STRATEGY", val: "random"},
		{name: "bad timezone", key: "TIMEZONE", val: "Mars/Olympus"},
		{name: "bad broker", key: "KAFKA_BROKERS", val: "no-port"},
		{name: "empty data dir", key: "DATA_DIR", val: ""},
		{name: "negative rate limit", key: "ORDER_RATE_LIMIT", val: "-1"},
		{name: "zero bill cache", key: "BILL_CACHE_CAPACITY", val: "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			assert.Error(t, config.New().Validate())
		})
	}
}
