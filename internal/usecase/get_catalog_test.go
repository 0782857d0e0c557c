package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/example/bakery-order-service/internal/adapter/cache"
	"github.com/example/bakery-order-service/internal/adapter/repo"
	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
)

func TestGetCatalogFillsCacheOnMiss(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(
		domain.Product{ID: 1, Name: "Bread", Price: 20, Stock: 100},
		domain.Product{ID: 2, Name: "Cake", Price: 100, Stock: 50},
	)
	c := cache.NewMemoryCatalogCache(time.Minute)
	uc := GetCatalog{Store: store, Cache: c, Metrics: metrics.New(prometheus.NewRegistry())}

	products, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)

	cached, ok := c.Get(ctx)
	require.True(t, ok)
	require.Equal(t, products, cached)
}

func TestGetCatalogServesFromCache(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryStore(domain.Product{ID: 1, Name: "Bread", Price: 20, Stock: 100})
	c := cache.NewMemoryCatalogCache(time.Minute)
	uc := GetCatalog{Store: store, Cache: c, Metrics: metrics.New(prometheus.NewRegistry())}

	_, err := uc.Execute(ctx)
	require.NoError(t, err)

	// подложим в кэш другой снимок: попадание должно вернуть именно его
	c.Set(ctx, []domain.Product{{ID: 1, Name: "Bread", Price: 20, Stock: 77}})
	products, err := uc.Execute(ctx)
	require.NoError(t, err)
	require.Equal(t, 77, products[0].Stock)
}
