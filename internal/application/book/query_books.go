package book

import (
	"context"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
)

// QueryBooksUseCase 图书查询(详情、列表、搜索)
type QueryBooksUseCase struct {
	bookService book.Service
}

// NewQueryBooksUseCase 创建查询用例
func NewQueryBooksUseCase(bookService book.Service) *QueryBooksUseCase {
	return &QueryBooksUseCase{bookService: bookService}
}

// Get 图书详情
func (uc *QueryBooksUseCase) Get(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookService.GetBookByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBookResponse(b), nil
}

// List 分页列表
func (uc *QueryBooksUseCase) List(ctx context.Context, params book.ListParams) (*BookPage, error) {
	books, total, err := uc.bookService.ListBooks(ctx, params)
	if err != nil {
		return nil, err
	}
	return NewBookPage(books, total, params.Page, params.PageSize), nil
}

// Search 条件搜索
func (uc *QueryBooksUseCase) Search(ctx context.Context, params book.SearchParams) (*BookPage, error) {
	books, total, err := uc.bookService.SearchBooks(ctx, params)
	if err != nil {
		return nil, err
	}
	return NewBookPage(books, total, params.Page, params.PageSize), nil
}
