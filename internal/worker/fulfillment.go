package worker

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/domain"
)

// Fulfillment — обработчик одного сообщения очереди: этапы выполняются
// строго последовательно, после каждого этапа статус заказа двигается
// вперёд через StatusUpdater. Сбой обновления логируется, но обработка
// не прерывается и сообщение не перевыставляется: заказ может застрять
// ниже completed — известное ограничение конвейера.
type Fulfillment struct {
	Updater   domain.StatusUpdater
	BakeDelay time.Duration
	PackDelay time.Duration
	Log       *zap.Logger
}

// Handle разбирает сообщение и прогоняет заказ через этапы выпечки
// и упаковки. Повторная доставка безопасна: обновления статуса идемпотентны.
func (f Fulfillment) Handle(ctx context.Context, raw []byte) error {
	var msg domain.OrderMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return err
	}
	if msg.OrderID == "" {
		return domain.ErrValidation
	}
	f.Log.Info("processing order",
		zap.String("order_id", msg.OrderID),
		zap.Int("product_id", msg.ProductID),
		zap.Int("quantity", msg.Quantity))

	f.Log.Info("baking", zap.String("order_id", msg.OrderID))
	if err := f.sleep(ctx, f.BakeDelay); err != nil {
		return err
	}
	if err := f.Updater.UpdateStatus(ctx, msg.OrderID, domain.StatusProcessing); err != nil {
		f.Log.Error("status update to processing failed",
			zap.String("order_id", msg.OrderID), zap.Error(err))
	}

	f.Log.Info("packaging", zap.String("order_id", msg.OrderID))
	if err := f.sleep(ctx, f.PackDelay); err != nil {
		return err
	}
	if err := f.Updater.UpdateStatus(ctx, msg.OrderID, domain.StatusCompleted); err != nil {
		f.Log.Error("status update to completed failed",
			zap.String("order_id", msg.OrderID), zap.Error(err))
		return nil
	}

	f.Log.Info("order completed", zap.String("order_id", msg.OrderID))
	return nil
}

func (f Fulfillment) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
