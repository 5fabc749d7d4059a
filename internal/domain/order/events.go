package order

import (
	"context"
	"time"
)

// 事件路由键
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// Event 领域事件
type Event interface {
	RoutingKey() string
}

// OrderPlaced 下单成功事件(事务提交后发布)
type OrderPlaced struct {
	OrderID    uint      `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     uint      `json:"user_id"`
	Total      string    `json:"total"`
	ItemCount  int       `json:"item_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey 实现Event
func (OrderPlaced) RoutingKey() string { return EventOrderPlaced }

// NewOrderPlaced 由已保存的订单构造事件
func NewOrderPlaced(o *Order) OrderPlaced {
	return OrderPlaced{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		Total:      o.Total.StringFixed(2),
		ItemCount:  len(o.Items),
		OccurredAt: time.Now(),
	}
}

// OrderStatusChanged 订单状态变更事件
type OrderStatusChanged struct {
	OrderID    uint      `json:"order_id"`
	OrderNo    string    `json:"order_no"`
	UserID     uint      `json:"user_id"`
	From       Status    `json:"from"`
	To         Status    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey 实现Event
func (OrderStatusChanged) RoutingKey() string { return EventOrderStatusChanged }

// EventPublisher 事件发布者
// 实现位于infrastructure/messaging(RabbitMQ/Kafka/空实现)
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// CheckoutLocker 按用户串行化结算
// Lock成功返回解锁函数;锁被占用返回ErrCheckoutInProgress
type CheckoutLocker interface {
	Lock(ctx context.Context, userID uint) (unlock func(context.Context) error, err error)
}
