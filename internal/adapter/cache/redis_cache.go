package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
)

const catalogKey = "product-catalog"

// RedisCatalogCache — кэш снимка каталога в Redis с TTL. Кэш советующий:
// любой сбой Redis логируется, считается в метриках и выглядит как промах,
// читатель уходит в хранилище.
type RedisCatalogCache struct {
	Client  *redis.Client
	TTL     time.Duration
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

// NewRedisCatalogCache подключается к Redis по URL с проверкой ping.
func NewRedisCatalogCache(redisURL string, ttl time.Duration, m *metrics.Metrics, log *zap.Logger) (*RedisCatalogCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisCatalogCache{Client: client, TTL: ttl, Metrics: m, Log: log}, nil
}

func (c *RedisCatalogCache) Get(ctx context.Context) ([]domain.Product, bool) {
	raw, err := c.Client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.Metrics.CacheFailures.WithLabelValues("get").Inc()
		c.Log.Warn("cache get failed", zap.Error(err))
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		// битый снимок — выбрасываем и перечитываем из хранилища
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, catalogKey, raw, c.TTL).Err(); err != nil {
		c.Metrics.CacheFailures.WithLabelValues("set").Inc()
		c.Log.Warn("cache set failed", zap.Error(err))
	}
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	if err := c.Client.Del(ctx, catalogKey).Err(); err != nil {
		c.Metrics.CacheFailures.WithLabelValues("invalidate").Inc()
		c.Log.Warn("cache invalidate failed", zap.Error(err))
	}
}

func (c *RedisCatalogCache) Close() error { return c.Client.Close() }

var _ domain.CatalogCache = (*RedisCatalogCache)(nil)
