package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/category"
)

// PublishBookUseCase 图书上架用例
// 1. 应用层负责用例编排，校验规则由领域服务负责(ISBN格式、价格、ISBN重复)
// 2. 分类ID必须全部存在
// 3. 管理员权限由路由中间件保证
type PublishBookUseCase struct {
	bookService book.Service
	categories  category.Repository
	log         *zap.Logger
}

// NewPublishBookUseCase 创建上架用例
func NewPublishBookUseCase(bookService book.Service, categories category.Repository, log *zap.Logger) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookService: bookService,
		categories:  categories,
		log:         log,
	}
}

// Execute 上架单本图书
func (uc *PublishBookUseCase) Execute(ctx context.Context, req PublishBookRequest) (*BookResponse, error) {
	if err := checkCategories(ctx, uc.categories, req.CategoryIDs); err != nil {
		return nil, err
	}

	b, err := uc.bookService.PublishBook(ctx, req.params())
	if err != nil {
		return nil, err
	}

	uc.log.Info("图书已上架", zap.Uint("book_id", b.ID), zap.String("isbn", b.ISBN))
	return toBookResponse(b), nil
}

// ExecuteBatch 批量上架，任何一本失败则整体失败
func (uc *PublishBookUseCase) ExecuteBatch(ctx context.Context, reqs []PublishBookRequest) ([]*BookResponse, error) {
	params := make([]book.CreateParams, 0, len(reqs))
	for _, req := range reqs {
		if err := checkCategories(ctx, uc.categories, req.CategoryIDs); err != nil {
			return nil, err
		}
		params = append(params, req.params())
	}

	books, err := uc.bookService.PublishBooks(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, toBookResponse(b))
	}
	uc.log.Info("图书批量上架", zap.Int("count", len(resp)))
	return resp, nil
}

func checkCategories(ctx context.Context, categories category.Repository, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := categories.FindByIDs(ctx, ids)
	return err
}
