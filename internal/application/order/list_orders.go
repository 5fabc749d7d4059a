package order

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
)

// ListOrdersUseCase 查询当前用户的订单(含明细)
type ListOrdersUseCase struct {
	orders order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orders order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orders: orders}
}

// Execute 执行
func (uc *ListOrdersUseCase) Execute(ctx context.Context, caller access.Caller, page, pageSize int) (*OrderPage, error) {
	orders, total, err := uc.orders.ListByUserID(ctx, caller.UserID, page, pageSize)
	if err != nil {
		return nil, err
	}

	details := make([]*OrderDetail, 0, len(orders))
	for _, o := range orders {
		details = append(details, toOrderDetail(o))
	}
	return &OrderPage{Orders: details, Total: total, Page: page, PageSize: pageSize}, nil
}
