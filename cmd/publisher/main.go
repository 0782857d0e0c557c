// Отладочная утилита: публикует сообщение заказа в канал очереди,
// минуя API. Читает JSON {order_id, product_id, quantity} со stdin.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/example/bakery-order-service/internal/adapter/natsstan"
	"github.com/example/bakery-order-service/internal/domain"
)

func main() {
	clusterID := getenv("STAN_CLUSTER_ID", "bakery-cluster")
	clientID := getenv("STAN_PUB_ID", "bakery-publisher")
	natsURL := getenv("NATS_URL", "nats://localhost:4222")
	subject := getenv("STAN_SUBJECT", "orders")

	var msg domain.OrderMessage
	if err := json.NewDecoder(os.Stdin).Decode(&msg); err != nil {
		log.Fatalf("read json from stdin: %v", err)
	}
	if msg.OrderID == "" {
		log.Fatal("order_id is required")
	}

	pub, err := natsstan.NewPublisher(clusterID, clientID, natsURL, subject)
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer pub.Close()

	if err := pub.Publish(context.Background(), msg); err != nil {
		log.Fatalf("publish: %v", err)
	}
	log.Printf("published order %s to %s", msg.OrderID, subject)
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
