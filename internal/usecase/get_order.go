package usecase

import (
	"context"

	"github.com/example/bakery-order-service/internal/domain"
)

// GetOrder — получить текущее состояние заказа по идентификатору.
type GetOrder struct {
	Store domain.OrderStore
}

func (uc GetOrder) Execute(ctx context.Context, id string) (domain.Order, error) {
	return uc.Store.GetOrder(ctx, id)
}
