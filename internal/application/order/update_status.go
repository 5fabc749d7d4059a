package order

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/tracing"
)

// UpdateStatusUseCase 管理员修改订单状态
type UpdateStatusUseCase struct {
	orders    order.Repository
	machine   *order.StatusMachine
	guard     *access.Guard
	publisher order.EventPublisher
	log       *zap.Logger
}

// NewUpdateStatusUseCase 创建状态变更用例
func NewUpdateStatusUseCase(
	orders order.Repository,
	machine *order.StatusMachine,
	guard *access.Guard,
	publisher order.EventPublisher,
	log *zap.Logger,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		orders:    orders,
		machine:   machine,
		guard:     guard,
		publisher: publisher,
		log:       log,
	}
}

// Execute 执行
// 权限 → 查订单 → 解析状态 → 状态机校验 → 持久化 → 发布事件
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, caller access.Caller, orderID uint, statusName string) (*OrderSummary, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateOrderStatus")
	defer span.End()

	if err := uc.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}

	o, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	target, err := order.ParseStatus(statusName)
	if err != nil {
		return nil, err
	}

	from := o.Status
	if err := uc.machine.Apply(o, target); err != nil {
		return nil, err
	}
	if err := uc.orders.UpdateStatus(ctx, o); err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	metrics.IncOrderStatusChange(string(target))
	uc.log.Info("订单状态已变更",
		zap.Uint("order_id", o.ID),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
		zap.String("operator", caller.Email),
	)

	event := order.OrderStatusChanged{
		OrderID:    o.ID,
		OrderNo:    o.OrderNo,
		UserID:     o.UserID,
		From:       from,
		To:         target,
		OccurredAt: time.Now(),
	}
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.log.Warn("发布状态变更事件失败", zap.Uint("order_id", o.ID), zap.Error(err))
	}

	return toOrderSummary(o), nil
}
