package natsstan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/bakery-order-service/internal/domain"
)

// Publisher — публикация сообщений о заказах в канал NATS Streaming.
// Канал и его долговечность обеспечивает брокер, не процесс.
type Publisher struct {
	conn    stan.Conn
	subject string
}

// NewPublisher устанавливает соединение с кластером NATS Streaming.
func NewPublisher(clusterID, clientID, url, subject string) (*Publisher, error) {
	if clientID == "" {
		clientID = fmt.Sprintf("bakery-api-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, fmt.Errorf("stan connect: %w", err)
	}
	return &Publisher{conn: sc, subject: subject}, nil
}

func (p *Publisher) Publish(_ context.Context, msg domain.OrderMessage) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal order message: %w", err)
	}
	return p.conn.Publish(p.subject, b)
}

func (p *Publisher) Close() error { return p.conn.Close() }

var _ domain.OrderPublisher = (*Publisher)(nil)
