package usecase

import (
	"context"

	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
)

// GetCatalog — отдать каталог из кэша, при промахе — из хранилища
// с записью свежего снимка обратно в кэш.
type GetCatalog struct {
	Store   domain.OrderStore
	Cache   domain.CatalogCache
	Metrics *metrics.Metrics
}

func (uc GetCatalog) Execute(ctx context.Context) ([]domain.Product, error) {
	if products, ok := uc.Cache.Get(ctx); ok {
		uc.Metrics.CacheHits.Inc()
		return products, nil
	}
	uc.Metrics.CacheMisses.Inc()
	products, err := uc.Store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	uc.Cache.Set(ctx, products)
	return products, nil
}
