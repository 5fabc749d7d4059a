package cart

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/application/access"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
)

// UpdateItemUseCase 修改购物车明细数量
// 明细不存在 → NotFound；不属于调用者 → AccessDenied；数量非正 → InvalidArgument
type UpdateItemUseCase struct {
	cartRepo cart.Repository
	guard    *access.Guard
}

// NewUpdateItemUseCase 创建修改数量用例
func NewUpdateItemUseCase(cartRepo cart.Repository, guard *access.Guard) *UpdateItemUseCase {
	return &UpdateItemUseCase{cartRepo: cartRepo, guard: guard}
}

// Execute 执行
func (uc *UpdateItemUseCase) Execute(ctx context.Context, caller access.Caller, itemID uint, quantity int) (*CartItemResponse, error) {
	item, err := uc.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.guard.AuthorizeCartItem(ctx, caller, item); err != nil {
		return nil, err
	}

	if err := item.ChangeQuantity(quantity); err != nil {
		return nil, err
	}
	if err := uc.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	metrics.IncCartOperation("update")
	resp := toCartItemResponse(item)
	return &resp, nil
}

// RemoveItemUseCase 删除购物车明细
type RemoveItemUseCase struct {
	cartRepo cart.Repository
	guard    *access.Guard
}

// NewRemoveItemUseCase 创建删除明细用例
func NewRemoveItemUseCase(cartRepo cart.Repository, guard *access.Guard) *RemoveItemUseCase {
	return &RemoveItemUseCase{cartRepo: cartRepo, guard: guard}
}

// Execute 执行
func (uc *RemoveItemUseCase) Execute(ctx context.Context, caller access.Caller, itemID uint) error {
	item, err := uc.cartRepo.FindItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := uc.guard.AuthorizeCartItem(ctx, caller, item); err != nil {
		return err
	}
	if err := uc.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return err
	}

	metrics.IncCartOperation("remove")
	return nil
}
