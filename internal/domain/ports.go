package domain

import "context"

// OrderStore — порт персистентности заказов и товаров. Единственная точка
// записи в склад и заказы; все мутации проходят через его транзакции.
type OrderStore interface {
	// PlaceOrder атомарно списывает quantity со склада и сохраняет заказ.
	// Возвращает ErrNotFound, если товара нет, ErrInsufficientStock,
	// если на складе меньше quantity.
	PlaceOrder(ctx context.Context, o Order) error
	// GetOrder возвращает текущее состояние заказа или ErrNotFound.
	GetOrder(ctx context.Context, id string) (Order, error)
	// SetStatus переводит заказ из from в to по принципу compare-and-set:
	// если текущий статус уже не from, возвращает ErrInvalidTransition.
	SetStatus(ctx context.Context, id string, from, to OrderStatus) error
	// ListProducts возвращает весь каталог.
	ListProducts(ctx context.Context) ([]Product, error)
}

// CatalogCache — порт необязательного кэша каталога. Отказ кэша не считается
// ошибкой: адаптер сам логирует сбои, читатель откатывается на OrderStore.
type CatalogCache interface {
	Get(ctx context.Context) ([]Product, bool)
	Set(ctx context.Context, products []Product)
	Invalidate(ctx context.Context)
}

// OrderPublisher — порт публикации новых заказов в очередь.
type OrderPublisher interface {
	Publish(ctx context.Context, msg OrderMessage) error
}

// MessageSubscriber — порт подписчика на входящие сообщения заказов.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; доставка at-least-once,
	// подтверждение — при передаче обработчику (auto-ack).
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}

// StatusUpdater — порт, через который воркер двигает статус заказа.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, status OrderStatus) error
}

// Общие доменные ошибки
var (
	ErrNotFound          = notFoundError("not found")
	ErrValidation        = validationError("invalid data")
	ErrInsufficientStock = validationError("insufficient stock")
	ErrInvalidTransition = validationError("invalid status transition")
)

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

type validationError string

func (e validationError) Error() string { return string(e) }
