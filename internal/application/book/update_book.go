package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
)

// UpdateBookUseCase 修改图书
// ISBN创建后不可修改;改价不影响已有订单(订单明细保存的是下单时的价格)
type UpdateBookUseCase struct {
	bookService book.Service
	categories  category.Repository
}

// NewUpdateBookUseCase 创建修改用例
func NewUpdateBookUseCase(bookService book.Service, categories category.Repository) *UpdateBookUseCase {
	return &UpdateBookUseCase{bookService: bookService, categories: categories}
}

// Execute 执行
func (uc *UpdateBookUseCase) Execute(ctx context.Context, id uint, req UpdateBookRequest) (*BookResponse, error) {
	if err := checkCategories(ctx, uc.categories, req.CategoryIDs); err != nil {
		return nil, err
	}

	b, err := uc.bookService.UpdateBook(ctx, id, book.UpdateParams{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		Price:       req.Price,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// DeleteBookUseCase 下架图书(软删除)
// 购物车中引用该书的明细保留，结算时返回图书不存在
type DeleteBookUseCase struct {
	bookService book.Service
	log         *zap.Logger
}

// NewDeleteBookUseCase 创建下架用例
func NewDeleteBookUseCase(bookService book.Service, log *zap.Logger) *DeleteBookUseCase {
	return &DeleteBookUseCase{bookService: bookService, log: log}
}

// Execute 执行
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}
	uc.log.Info("图书已下架", zap.Uint("book_id", id))
	return nil
}
