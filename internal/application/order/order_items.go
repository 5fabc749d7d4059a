package order

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
)

// OrderItemsUseCase 查看订单明细
// 订单必须属于调用者，管理员可以查看任何订单
type OrderItemsUseCase struct {
	orders order.Repository
	guard  *access.Guard
}

// NewOrderItemsUseCase 创建订单明细用例
func NewOrderItemsUseCase(orders order.Repository, guard *access.Guard) *OrderItemsUseCase {
	return &OrderItemsUseCase{orders: orders, guard: guard}
}

// List 订单的全部明细
func (uc *OrderItemsUseCase) List(ctx context.Context, caller access.Caller, orderID uint) ([]OrderItemResponse, error) {
	o, err := uc.load(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, toOrderItemResponse(&o.Items[i]))
	}
	return items, nil
}

// Get 订单中的单个明细
func (uc *OrderItemsUseCase) Get(ctx context.Context, caller access.Caller, orderID, itemID uint) (*OrderItemResponse, error) {
	o, err := uc.load(ctx, caller, orderID)
	if err != nil {
		return nil, err
	}

	item, err := o.FindItem(itemID)
	if err != nil {
		return nil, err
	}
	resp := toOrderItemResponse(item)
	return &resp, nil
}

func (uc *OrderItemsUseCase) load(ctx context.Context, caller access.Caller, orderID uint) (*order.Order, error) {
	o, err := uc.orders.FindWithItemsAndOwner(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := uc.guard.AuthorizeOrder(caller, o); err != nil {
		return nil, err
	}
	return o, nil
}
