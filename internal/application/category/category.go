// Package category 分类管理用例
// 写操作的管理员权限由路由中间件保证
package category

import (
	"context"

	appbook "github.com/Vitalii-Kazymyrovych/book-store/internal/application/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
)

// CategoryRequest 创建/修改分类
type CategoryRequest struct {
	Name        string
	Description string
}

// CategoryResponse 分类
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryPage 分页结果
type CategoryPage struct {
	Categories []*CategoryResponse
	Total      int64
	Page       int
	PageSize   int
}

// UseCase 分类用例集合
type UseCase struct {
	categories category.Repository
	books      book.Repository
}

// NewUseCase 创建分类用例
func NewUseCase(categories category.Repository, books book.Repository) *UseCase {
	return &UseCase{categories: categories, books: books}
}

// Create 创建分类
func (uc *UseCase) Create(ctx context.Context, req CategoryRequest) (*CategoryResponse, error) {
	c, err := category.NewCategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := uc.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Get 分类详情
func (uc *UseCase) Get(ctx context.Context, id uint) (*CategoryResponse, error) {
	c, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// List 分页列表
func (uc *UseCase) List(ctx context.Context, page, pageSize int) (*CategoryPage, error) {
	list, total, err := uc.categories.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toResponse(c))
	}
	return &CategoryPage{Categories: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update 修改分类
func (uc *UseCase) Update(ctx context.Context, id uint, req CategoryRequest) (*CategoryResponse, error) {
	c, err := uc.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Update(req.Name, req.Description)
	if err := uc.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// Delete 删除分类(软删除)
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.categories.Delete(ctx, id)
}

// ListBooks 分类下的图书，分类不存在返回ErrCategoryNotFound
func (uc *UseCase) ListBooks(ctx context.Context, id uint, page, pageSize int) (*appbook.BookPage, error) {
	if _, err := uc.categories.FindByID(ctx, id); err != nil {
		return nil, err
	}
	books, total, err := uc.books.ListByCategoryID(ctx, id, page, pageSize)
	if err != nil {
		return nil, err
	}
	return appbook.NewBookPage(books, total, page, pageSize), nil
}

func toResponse(c *category.Category) *CategoryResponse {
	return &CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}
