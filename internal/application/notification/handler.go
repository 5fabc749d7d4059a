// Package notification 消费订单事件并通知用户
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
)

// Notifier 通知渠道（邮件、短信等）
type Notifier interface {
	Notify(ctx context.Context, userID uint, subject, body string) error
}

// LogNotifier 只写日志的通知渠道
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier 创建日志通知渠道
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify 实现Notifier
func (n *LogNotifier) Notify(_ context.Context, userID uint, subject, body string) error {
	n.log.Info("通知用户",
		zap.Uint("user_id", userID),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

// Handler 订单事件处理器，签名与mq.Handler一致
type Handler struct {
	notifier Notifier
	log      *zap.Logger
}

// NewHandler 创建事件处理器
func NewHandler(notifier Notifier, log *zap.Logger) *Handler {
	return &Handler{notifier: notifier, log: log}
}

// Handle 按路由键分发
// 无法解析的消息返回error，由消费者决定是否重投
func (h *Handler) Handle(ctx context.Context, routingKey string, body []byte) error {
	switch routingKey {
	case order.EventOrderPlaced:
		var e order.OrderPlaced
		if err := json.Unmarshal(body, &e); err != nil {
			return fmt.Errorf("解析%s失败: %w", routingKey, err)
		}
		return h.notifier.Notify(ctx, e.UserID,
			fmt.Sprintf("订单%s已创建", e.OrderNo),
			fmt.Sprintf("共%d件商品，合计%s", e.ItemCount, e.Total))

	case order.EventOrderStatusChanged:
		var e order.OrderStatusChanged
		if err := json.Unmarshal(body, &e); err != nil {
			return fmt.Errorf("解析%s失败: %w", routingKey, err)
		}
		if e.UserID == 0 {
			h.log.Warn("状态变更事件缺少用户ID", zap.String("order_no", e.OrderNo))
			return nil
		}
		return h.notifier.Notify(ctx, e.UserID,
			fmt.Sprintf("订单%s状态更新", e.OrderNo),
			fmt.Sprintf("%s → %s", e.From, e.To))

	default:
		// 未知事件直接确认，避免阻塞队列
		h.log.Debug("忽略未知事件", zap.String("routing_key", routingKey))
		return nil
	}
}
