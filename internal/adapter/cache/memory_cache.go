package cache

import (
	"context"
	"sync"
	"time"

	"github.com/example/bakery-order-service/internal/domain"
)

// MemoryCatalogCache — кэш каталога в памяти процесса с тем же контрактом,
// что у Redis-варианта. Используется в тестах и при недоступном Redis.
type MemoryCatalogCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	products []domain.Product
	expires  time.Time
	now      func() time.Time
}

func NewMemoryCatalogCache(ttl time.Duration) *MemoryCatalogCache {
	return &MemoryCatalogCache{ttl: ttl, now: time.Now}
}

func (c *MemoryCatalogCache) Get(_ context.Context) ([]domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.products == nil || c.now().After(c.expires) {
		return nil, false
	}
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out, true
}

func (c *MemoryCatalogCache) Set(_ context.Context, products []domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = make([]domain.Product, len(products))
	copy(c.products, products)
	c.expires = c.now().Add(c.ttl)
}

func (c *MemoryCatalogCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	c.products = nil
	c.mu.Unlock()
}

var _ domain.CatalogCache = (*MemoryCatalogCache)(nil)
