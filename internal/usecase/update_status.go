package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/domain"
	"github.com/example/bakery-order-service/internal/metrics"
)

// UpdateOrderStatus — перевести заказ в новый статус. Вызывается воркером,
// а не клиентом. Идемпотентен: повтор текущего статуса — no-op успех,
// это гасит дубли at-least-once доставки.
type UpdateOrderStatus struct {
	Store   domain.OrderStore
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func (uc UpdateOrderStatus) Execute(ctx context.Context, id string, status domain.OrderStatus) error {
	if !domain.ValidStatus(status) || status == domain.StatusPending {
		// pending устанавливается только при создании заказа.
		return domain.ErrInvalidTransition
	}
	o, err := uc.Store.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	if o.Status == status {
		return nil
	}
	if !domain.CanAdvance(o.Status, status) {
		return domain.ErrInvalidTransition
	}
	// compare-and-set: конкурирующий дубль проиграет гонку в хранилище,
	// статус двигается строго монотонно.
	if err := uc.Store.SetStatus(ctx, id, o.Status, status); err != nil {
		if err == domain.ErrInvalidTransition {
			// гонку мог выиграть дубль с тем же целевым статусом
			if cur, rerr := uc.Store.GetOrder(ctx, id); rerr == nil && cur.Status == status {
				return nil
			}
		}
		return err
	}
	uc.Metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	uc.Log.Info("order status updated",
		zap.String("order_id", id), zap.String("status", string(status)))
	return nil
}
