package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics — счётчики конвейера заказов. Сбои best-effort каналов
// (публикация в очередь, инвалидация кэша) видны только здесь и в логах,
// поэтому счётчики обязательны, а не опциональны.
type Metrics struct {
	OrdersPlaced      prometheus.Counter
	OrdersRejected    *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	PublishFailures   prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
	CacheFailures     *prometheus.CounterVec
	registry          *prometheus.Registry
}

func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "orders_placed_total",
			Help:      "Orders successfully placed.",
		}),
		OrdersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "orders_rejected_total",
			Help:      "Orders rejected before the transaction committed.",
		}, []string{"reason"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "order_status_transitions_total",
			Help:      "Applied order status transitions.",
		}, []string{"status"}),
		PublishFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "queue_publish_failures_total",
			Help:      "Order messages that could not be published after commit.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "catalog_cache_hits_total",
			Help:      "Catalog reads served from cache.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "catalog_cache_misses_total",
			Help:      "Catalog reads that fell through to the database.",
		}),
		CacheFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bakery",
			Name:      "catalog_cache_failures_total",
			Help:      "Cache operations that failed and were degraded to best-effort.",
		}, []string{"op"}),
		registry: reg,
	}
	reg.MustRegister(
		m.OrdersPlaced, m.OrdersRejected, m.StatusTransitions,
		m.PublishFailures, m.CacheHits, m.CacheMisses, m.CacheFailures,
	)
	return m
}

// Handler — HTTP-обработчик /metrics для реестра этого набора счётчиков.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
