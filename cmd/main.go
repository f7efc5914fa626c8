package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/taxboard/invoice-request-service/internal/app"
	"github.com/taxboard/invoice-request-service/internal/config"
	"github.com/taxboard/invoice-request-service/internal/events"
	"github.com/taxboard/invoice-request-service/internal/handler"
	"github.com/taxboard/invoice-request-service/internal/postgres"
	"github.com/taxboard/invoice-request-service/internal/repo"
	"github.com/taxboard/invoice-request-service/internal/service"
	"github.com/taxboard/invoice-request-service/pkg/cache"
	"github.com/taxboard/invoice-request-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Invoice Request Service API
// @version         1.0
// @description     HTTP API сервиса запросов счетов
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	invoiceRepo := repo.NewPostgresRepo(db, repo.Options{
		SingleRequestPerOrder: conf.Invoice.SingleRequestPerOrder,
	})
	txManager := trm.NewManager(db)
	cache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	publisher := events.NewKafkaPublisher(logger, conf.Kafka)

	invoiceService := service.NewInvoiceService(logger, txManager, invoiceRepo, cache, publisher)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, invoiceService)
	httpHandler := handler.NewHTTPHandler(logger, invoiceService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetClosers(publisher)
	app.SetStarters(cache, cacheWarmUpAdapter{svc: invoiceService, count: conf.Cache.Capacity})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
