package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/example/bakery-order-service/internal/adapter/natsstan"
	"github.com/example/bakery-order-service/internal/config"
	"github.com/example/bakery-order-service/internal/worker"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.LoadWorker()

	fulfillment := worker.Fulfillment{
		Updater:   worker.NewHTTPStatusUpdater(cfg.BackendURL),
		BakeDelay: cfg.BakeDelay,
		PackDelay: cfg.PackDelay,
		Log:       log,
	}

	// N подписок в одной queue group делят поток сообщений между собой;
	// внутри одного сообщения этапы всегда последовательны.
	base := cfg.StanClientID
	if base == "" {
		base = fmt.Sprintf("bakery-worker-%d", time.Now().UnixNano())
	}
	for i := 0; i < cfg.Consumers; i++ {
		sub := &natsstan.Subscriber{
			ClusterID:       cfg.StanClusterID,
			ClientID:        fmt.Sprintf("%s-%d", base, i),
			URL:             cfg.NatsURL,
			Subject:         cfg.Subject,
			QueueGroup:      "fulfillment-workers",
			Durable:         "fulfillment-durable",
			ConnectAttempts: cfg.ConnectAttempts,
			ConnectBackoff:  cfg.ConnectBackoff,
			Log:             log,
		}
		if err := sub.Subscribe(ctx, fulfillment.Handle); err != nil {
			log.Fatal("subscribe", zap.Error(err))
		}
	}
	log.Info("worker started, waiting for messages",
		zap.Int("consumers", cfg.Consumers), zap.String("subject", cfg.Subject))

	<-ctx.Done()
}
