package config

import (
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Store Store `validate:"required"`

	Static Static `validate:"required"`

	Orders Orders `validate:"required"`

	Kafka Kafka

	Tracing Tracing

	BillCache BillCache

	Timezone        string        `validate:"omitempty,timezone"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url|eq=*"`
}

type Store struct {
	DataDir      string `validate:"required"`
	ProductsFile string `validate:"required"`
	PartnersFile string `validate:"required"`
	OrdersFile   string `validate:"required"`
	SalesFile    string `validate:"required"`
}

type Static struct {
	Dir   string `validate:"required"`
	Index string `validate:"required"`
}

type Orders struct {
	IDStrategy string `validate:"required,oneof=timestamp uuid"`

	// RateLimit is order submissions per second per client. Zero disables it.
	RateLimit float64 `validate:"gte=0"`
	RateBurst int     `validate:"gte=0"`
}

// Kafka is optional: with no brokers events are not published.
type Kafka struct {
	Brokers []string `validate:"omitempty,dive,hostname_port"`
	Topic   string   `validate:"required_with=Brokers"`

	// IntakeTopic carries orders submitted by partner stores. Empty disables
	// the consumer.
	IntakeTopic   string
	GroupID       string        `validate:"required_with=IntakeTopic"`
	ReaderMaxWait time.Duration `validate:"gte=0"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

// Tracing is optional: with no endpoint spans are not exported.
type Tracing struct {
	Endpoint    string `validate:"omitempty,hostname_port"`
	ServiceName string `validate:"required"`
}

type BillCache struct {
	Capacity int           `validate:"gt=0"`
	TTL      time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "3000"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "*"), ","),
		},

		Store: Store{
			DataDir:      env("DATA_DIR", "server"),
			ProductsFile: env("PRODUCTS_FILE", "products.json"),
			PartnersFile: env("PARTNERS_FILE", "partner-store.json"),
			OrdersFile:   env("ORDERS_FILE", "orders.json"),
			SalesFile:    env("SALES_FILE", "sales.json"),
		},

		Static: Static{
			Dir:   env("STATIC_DIR", "pages"),
			Index: env("STATIC_INDEX", "index.html"),
		},

		Orders: Orders{
			IDStrategy: env("ORDER_ID_STRATEGY", "timestamp"),
			RateLimit:  envFloat("ORDER_RATE_LIMIT", 5),
			RateBurst:  envInt("ORDER_RATE_BURST", 10),
		},

		Kafka: Kafka{
			Brokers:       envList("KAFKA_BROKERS"),
			Topic:         env("KAFKA_TOPIC", "storefront.orders"),
			IntakeTopic:   env("KAFKA_INTAKE_TOPIC", ""),
			GroupID:       env("KAFKA_GROUP_ID", "storefront"),
			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", time.Second),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Tracing: Tracing{
			Endpoint:    env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			ServiceName: env("OTEL_SERVICE_NAME", "storefront"),
		},

		BillCache: BillCache{
			Capacity: envInt("BILL_CACHE_CAPACITY", 100),
			TTL:      envDuration("BILL_CACHE_TTL", 10*time.Minute),
		},

		Timezone:        env("TIMEZONE", ""),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Location resolves Timezone. An empty zone means the host's local time.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envList(key string) []string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
