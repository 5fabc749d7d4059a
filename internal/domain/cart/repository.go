package cart

import (
	"context"
)

// Repository 购物车仓储接口
// 不做归属校验，由应用层的访问守卫负责
type Repository interface {
	// FindByUserID 查找用户的购物车，明细连同图书标题和当前价格一起加载
	// 不存在返回ErrCartNotFound
	FindByUserID(ctx context.Context, userID uint) (*ShoppingCart, error)

	// Create 创建购物车，唯一索引冲突返回ErrCartDuplicate
	Create(ctx context.Context, cart *ShoppingCart) error

	// FindItemByID 查找明细，不存在返回ErrCartItemNotFound
	FindItemByID(ctx context.Context, itemID uint) (*CartItem, error)

	// AddItem 总是新增一行，不与同一本书的已有明细合并
	AddItem(ctx context.Context, item *CartItem) error

	// UpdateItem 只更新数量
	UpdateItem(ctx context.Context, item *CartItem) error

	// RemoveItem 删除明细
	RemoveItem(ctx context.Context, itemID uint) error

	// Clear 删除全部明细并递增版本号
	// 版本号与cart.Version不一致时返回ErrCartModified
	Clear(ctx context.Context, cart *ShoppingCart) error
}
