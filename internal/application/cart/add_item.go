package cart

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
)

// AddItemUseCase 加入购物车
// 1. 图书必须存在且未被删除
// 2. 没有购物车时先创建
// 3. 总是新增一行，同一本书重复加购不合并
type AddItemUseCase struct {
	carts    cart.Service
	cartRepo cart.Repository
	books    book.Repository
}

// NewAddItemUseCase 创建加购用例
func NewAddItemUseCase(carts cart.Service, cartRepo cart.Repository, books book.Repository) *AddItemUseCase {
	return &AddItemUseCase{carts: carts, cartRepo: cartRepo, books: books}
}

// Execute 执行
func (uc *AddItemUseCase) Execute(ctx context.Context, caller access.Caller, req AddItemRequest) (*CartItemResponse, error) {
	b, err := uc.books.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}

	c, err := uc.carts.GetOrCreate(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	item, err := cart.NewCartItem(c.ID, b.ID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	item.BookTitle = b.Title

	metrics.IncCartOperation("add")
	resp := toCartItemResponse(item)
	return &resp, nil
}
