// Package access 访问守卫：资源归属校验与管理员权限
// 每次调用都重新判定，不缓存授权结果
package access

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/user"
	apperrors "github.com/Vitalii-Kazymyrovych/book-store/pkg/errors"
)

// Caller 当前调用者，由鉴权中间件从JWT Claims解析
type Caller struct {
	UserID uint
	Email  string
	Roles  []string
}

// IsAdmin 是否拥有admin角色
func (c Caller) IsAdmin() bool {
	for _, r := range c.Roles {
		if name, ok := user.ParseRoleName(r); ok && name == user.RoleAdmin {
			return true
		}
	}
	return false
}

// Guard 访问守卫
type Guard struct {
	carts cart.Service
}

// NewGuard 创建访问守卫
func NewGuard(carts cart.Service) *Guard {
	return &Guard{carts: carts}
}

// AuthorizeCartItem 校验购物车明细属于调用者
// 需要调用者自己的购物车来比较ID，调用者还没有购物车时会顺带创建一个
// 购物车明细没有管理员豁免
func (g *Guard) AuthorizeCartItem(ctx context.Context, caller Caller, item *cart.CartItem) (*cart.ShoppingCart, error) {
	own, err := g.carts.GetOrCreate(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if !own.Owns(item) {
		return nil, apperrors.ErrAccessDenied.WithMessagef("无权操作购物车明细: %d", item.ID)
	}
	return own, nil
}

// AuthorizeOrder 订单所有者或管理员可以访问
// 订单带有所属邮箱时同时比较邮箱
func (g *Guard) AuthorizeOrder(caller Caller, o *order.Order) error {
	if caller.IsAdmin() {
		return nil
	}
	if o.IsOwnedBy(caller.UserID) && (o.UserEmail == "" || o.UserEmail == caller.Email) {
		return nil
	}
	return apperrors.ErrAccessDenied.WithMessagef("无权访问订单: %d", o.ID)
}

// RequireAdmin 要求管理员权限
func (g *Guard) RequireAdmin(caller Caller) error {
	if !caller.IsAdmin() {
		return apperrors.ErrAccessDenied.WithMessagef("需要管理员权限")
	}
	return nil
}
