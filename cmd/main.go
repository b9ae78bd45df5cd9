package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/storefront/docs"
	"github.com/SergeyBogomolovv/storefront/internal/admin"
	"github.com/SergeyBogomolovv/storefront/internal/app"
	"github.com/SergeyBogomolovv/storefront/internal/config"
	"github.com/SergeyBogomolovv/storefront/internal/events"
	"github.com/SergeyBogomolovv/storefront/internal/handler"
	"github.com/SergeyBogomolovv/storefront/internal/ident"
	"github.com/SergeyBogomolovv/storefront/internal/middleware"
	"github.com/SergeyBogomolovv/storefront/internal/repo"
	"github.com/SergeyBogomolovv/storefront/internal/service"
	"github.com/SergeyBogomolovv/storefront/internal/store"
	"github.com/SergeyBogomolovv/storefront/internal/telemetry"
	"github.com/SergeyBogomolovv/storefront/pkg/cache"
	"github.com/SergeyBogomolovv/storefront/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Storefront API
// @version         1.0
// @description     Catalog, checkout and order management for the storefront.
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, conf.Tracing)
	panicIfErr("failed to init tracing", err)

	loc := conf.Location()
	fileStore := store.NewFileStore(logger, conf.Store)
	jsonRepo := repo.NewJSONRepo(logger, fileStore)
	txManager := trm.NewManager()
	publisher := events.New(logger, conf.Kafka)

	service.RegisterMetrics()
	handler.RegisterMetrics()

	ids := ident.New(conf.Orders.IDStrategy)
	if ts, ok := ids.(*ident.Timestamp); ok {
		for _, o := range jsonRepo.Orders(ctx) {
			ts.Observe(o.OrderID)
		}
	}

	orderService := service.NewOrderService(logger, txManager, jsonRepo, ids, publisher, loc)
	catalogService := service.NewCatalogService(logger, jsonRepo)

	renderer, err := admin.NewRenderer()
	panicIfErr("failed to load admin templates", err)
	bills := cache.NewLRU[string, []byte](conf.BillCache.Capacity, conf.BillCache.TTL)

	limiter := middleware.NewRateLimiter(conf.Orders.RateLimit, conf.Orders.RateBurst)
	httpHandler := handler.NewHTTPHandler(logger, orderService, catalogService, limiter.Limit)
	adminHandler := handler.NewAdminHandler(logger, orderService, renderer, bills, loc)
	staticHandler := handler.NewStaticHandler(logger, conf.Static.Dir, conf.Static.Index)

	application := app.New(logger, conf)

	application.SetHTTPHandlers(handler.HealthHandler{}, httpHandler, adminHandler, staticHandler)
	if conf.Kafka.IntakeTopic != "" && len(conf.Kafka.Brokers) > 0 {
		application.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, orderService))
	}
	application.SetStarters(bills)
	application.SetClosers(
		app.Closer{Name: "event publisher", Close: func(context.Context) error { return publisher.Close() }},
		app.Closer{Name: "tracer provider", Close: shutdownTracing},
	)

	panicIfErr("failed to start app", application.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", application.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
