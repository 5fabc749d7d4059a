package cart

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
)

// GetCartUseCase 查看购物车
// 首次访问时惰性创建空购物车
type GetCartUseCase struct {
	carts cart.Service
}

// NewGetCartUseCase 创建查看购物车用例
func NewGetCartUseCase(carts cart.Service) *GetCartUseCase {
	return &GetCartUseCase{carts: carts}
}

// Execute 执行
func (uc *GetCartUseCase) Execute(ctx context.Context, caller access.Caller) (*CartResponse, error) {
	c, err := uc.carts.GetOrCreate(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}
