package repo

import (
	"context"
	"sort"
	"sync"

	"github.com/example/bakery-order-service/internal/domain"
)

// MemoryStore — хранилище в памяти с той же семантикой, что у PostgresStore.
// Используется в тестах и для локального запуска без Postgres.
type MemoryStore struct {
	mu       sync.Mutex
	products map[int]domain.Product
	orders   map[string]domain.Order
}

func NewMemoryStore(products ...domain.Product) *MemoryStore {
	s := &MemoryStore{
		products: make(map[int]domain.Product),
		orders:   make(map[string]domain.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *MemoryStore) PlaceOrder(_ context.Context, o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[o.ProductID]
	if !ok {
		return domain.ErrNotFound
	}
	if p.Stock < o.Quantity {
		return domain.ErrInsufficientStock
	}
	p.Stock -= o.Quantity
	s.products[o.ProductID] = p
	s.orders[o.ID] = o
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrNotFound
	}
	return o, nil
}

func (s *MemoryStore) SetStatus(_ context.Context, id string, from, to domain.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	if o.Status != from {
		return domain.ErrInvalidTransition
	}
	o.Status = to
	s.orders[id] = o
	return nil
}

func (s *MemoryStore) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int, 0, len(s.products))
	for id := range s.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	products := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		products = append(products, s.products[id])
	}
	return products, nil
}

var _ domain.OrderStore = (*MemoryStore)(nil)
