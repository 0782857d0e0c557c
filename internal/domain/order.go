package domain

// OrderStatus — статус заказа в конвейере выполнения.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
)

// nextStatus — единственное допустимое ребро из каждого состояния.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusCompleted,
}

// ValidStatus сообщает, известен ли статус s.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// CanAdvance — допустим ли переход from -> to по машине состояний.
// Повторная установка текущего статуса переходом не считается.
func CanAdvance(from, to OrderStatus) bool {
	return nextStatus[from] == to
}

// Product — доменная сущность товара. Stock никогда не опускается ниже нуля:
// списание, которое нарушило бы это, отклоняется целиком.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Order — доменная сущность заказа.
type Order struct {
	ID        string      `json:"order_id"`
	ProductID int         `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
}

// OrderMessage — сообщение очереди о новом заказе; неизменяемо после публикации.
type OrderMessage struct {
	OrderID   string `json:"order_id"`
	ProductID int    `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
