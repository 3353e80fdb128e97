package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/autobid/transport-service/docs"
	"github.com/autobid/transport-service/internal/app"
	"github.com/autobid/transport-service/internal/booking"
	"github.com/autobid/transport-service/internal/config"
	"github.com/autobid/transport-service/internal/handler"
	"github.com/autobid/transport-service/internal/postgres"
	"github.com/autobid/transport-service/internal/quote"
	"github.com/autobid/transport-service/internal/repo"
	"github.com/autobid/transport-service/pkg/cache"
	"github.com/autobid/transport-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Transport Service API
// @version         1.0
// @description     Cross-border vehicle transport quoting and booking API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	bookingRepo := repo.NewBookingRepo(db)
	providerRepo := repo.NewProviderRepo(db)
	ratesRepo := repo.NewRatesRepo(db)
	customsRepo := repo.NewCustomsRepo(db)

	txManager := trm.NewManager(db)
	bookingCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	quoteService := quote.NewService(logger, providerRepo, ratesRepo, customsRepo, conf.Quote.BaseCurrency)
	bookingService := booking.NewService(logger, txManager, bookingRepo, providerRepo, bookingCache)

	handler.RegisterMetrics()
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, bookingService)
	httpHandler := handler.NewHTTPHandler(logger, quoteService, bookingService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(
		janitorStarter{cache: bookingCache},
		cacheWarmUpAdapter{svc: bookingService, count: conf.Cache.Capacity},
	)

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

type janitorStarter struct {
	cache *cache.LRUCache
}

func (a janitorStarter) Start(ctx context.Context) error {
	a.cache.StartJanitor(ctx)
	return nil
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
