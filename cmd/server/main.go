package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/adapter/cache"
	"github.com/example/bakery-order-service/internal/adapter/httpapi"
	"github.com/example/bakery-order-service/internal/adapter/natsstan"
	"github.com/example/bakery-order-service/internal/adapter/repo"
	"github.com/example/bakery-order-service/internal/config"
	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
	"github.com/example/bakery-order-service/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.LoadServer()
	m := metrics.New(prometheus.NewRegistry())

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.Fatal("init schema", zap.Error(err))
	}
	if err := repo.SeedProducts(ctx, pool); err != nil {
		log.Fatal("seed products", zap.Error(err))
	}
	store := repo.NewPostgresStore(pool)

	// Redis опционален: без него каталог читается напрямую из БД.
	catalogCache := connectCache(cfg, m, log)

	publisher, err := natsstan.NewPublisher(cfg.StanClusterID, cfg.StanClientID, cfg.NatsURL, cfg.Subject)
	if err != nil {
		log.Fatal("broker connect", zap.Error(err))
	}
	defer publisher.Close()

	srv := httpapi.NewServer(
		usecase.GetCatalog{Store: store, Cache: catalogCache, Metrics: m},
		usecase.PlaceOrder{Store: store, Cache: catalogCache, Queue: publisher, Metrics: m, Log: log},
		usecase.GetOrder{Store: store},
		usecase.UpdateOrderStatus{Store: store, Metrics: m, Log: log},
		m,
	)

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Router}
	go func() {
		log.Info("http listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	_ = httpSrv.Shutdown(shutdownCtx)
}

// connectCache пробует достучаться до Redis несколько раз; если не вышло,
// работаем на кэше в памяти процесса.
func connectCache(cfg config.Server, m *metrics.Metrics, log *zap.Logger) domain.CatalogCache {
	for i := 0; i < 5; i++ {
		c, err := cache.NewRedisCatalogCache(cfg.RedisURL, cfg.CacheTTL, m, log)
		if err == nil {
			log.Info("redis connected")
			return c
		}
		log.Warn("waiting for redis", zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	log.Warn("redis unavailable, falling back to in-process cache")
	return cache.NewMemoryCatalogCache(cfg.CacheTTL)
}
