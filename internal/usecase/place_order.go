package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
)

// PlaceOrder — оформить заказ: атомарно списать остаток и создать заказ,
// затем инвалидировать кэш каталога и опубликовать сообщение в очередь.
// Кэш и очередь — best-effort: их сбои не откатывают зафиксированную
// транзакцию, а только логируются и считаются в метриках.
type PlaceOrder struct {
	Store   domain.OrderStore
	Cache   domain.CatalogCache
	Queue   domain.OrderPublisher
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func (uc PlaceOrder) Execute(ctx context.Context, productID, quantity int) (domain.Order, error) {
	if quantity <= 0 {
		uc.Metrics.OrdersRejected.WithLabelValues("validation").Inc()
		return domain.Order{}, domain.ErrValidation
	}

	o := domain.Order{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
		Status:    domain.StatusPending,
	}
	if err := uc.Store.PlaceOrder(ctx, o); err != nil {
		switch err {
		case domain.ErrNotFound:
			uc.Metrics.OrdersRejected.WithLabelValues("not_found").Inc()
		case domain.ErrInsufficientStock:
			uc.Metrics.OrdersRejected.WithLabelValues("insufficient_stock").Inc()
		}
		return domain.Order{}, err
	}
	uc.Metrics.OrdersPlaced.Inc()

	// Транзакция зафиксирована; дальше только best-effort каналы.
	uc.Cache.Invalidate(ctx)

	msg := domain.OrderMessage{OrderID: o.ID, ProductID: o.ProductID, Quantity: o.Quantity}
	if err := uc.Queue.Publish(ctx, msg); err != nil {
		// Заказ остаётся в pending и может никогда не быть подхвачен —
		// эксплуатационная проблема, не нарушение хранимого состояния.
		uc.Metrics.PublishFailures.Inc()
		uc.Log.Error("queue publish failed",
			zap.String("order_id", o.ID), zap.Error(err))
	}
	return o, nil
}
