package order

import (
	"context"
)

// Repository 订单仓储接口(依赖倒置原则)
// 事务通过context传递，Save与清空购物车可以在同一事务中执行
type Repository interface {
	// Save 保存新订单及其明细，回填生成的ID
	Save(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(不含明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// FindWithItemsAndOwner 查找订单，连同全部明细和所属用户的邮箱
	FindWithItemsAndOwner(ctx context.Context, id uint) (*Order, error)

	// ListByUserID 分页查询用户订单，明细一并加载，按时间倒序
	ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*Order, int64, error)

	// UpdateStatus 只更新状态
	UpdateStatus(ctx context.Context, order *Order) error
}
