package natsstan

import (
	"context"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"
	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/domain"
)

// Subscriber — подписчик очереди заказов. Доставка at-least-once,
// подтверждение автоматическое при передаче обработчику: если обработчик
// упал на полпути, сообщение не переотправляется — принятое ограничение,
// идемпотентность обновлений статуса его компенсирует.
type Subscriber struct {
	ClusterID       string
	ClientID        string
	URL             string
	Subject         string
	QueueGroup      string
	Durable         string
	ConnectAttempts int
	ConnectBackoff  time.Duration
	Log             *zap.Logger
}

// Connect устанавливает соединение с брокером с ограниченным числом попыток.
// Исчерпание бюджета — фатальная ошибка для вызывающего процесса.
func (s *Subscriber) Connect(ctx context.Context) (stan.Conn, error) {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("bakery-worker-%d", time.Now().UnixNano())
	}
	attempts := s.ConnectAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
		if err == nil {
			return sc, nil
		}
		lastErr = err
		s.Log.Warn("broker connect failed, retrying",
			zap.Int("attempt", i), zap.Int("max_attempts", attempts), zap.Error(err))
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.ConnectBackoff):
		}
	}
	return nil, fmt.Errorf("broker unreachable after %d attempts: %w", attempts, lastErr)
}

// Subscribe подписывает обработчик на канал заказов через queue group,
// чтобы экземпляры воркера делили поток сообщений.
func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	sc, err := s.Connect(ctx)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, s.QueueGroup, func(m *stan.Msg) {
		if err := handler(ctx, m.Data); err != nil {
			// auto-ack: сообщение уже подтверждено, только логируем
			s.Log.Error("handler error", zap.Error(err))
		}
	}, stan.DurableName(s.Durable), stan.DeliverAllAvailable())
	if err != nil {
		return fmt.Errorf("stan subscribe: %w", err)
	}
	return nil
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
