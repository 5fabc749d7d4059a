package category

import (
	"context"
)

// Repository 分类仓储接口
type Repository interface {
	Create(ctx context.Context, category *Category) error
	SaveAll(ctx context.Context, categories []*Category) error
	FindByID(ctx context.Context, id uint) (*Category, error)

	// FindByIDs 批量查找，任何一个ID不存在返回ErrCategoryNotFound(消息中包含该ID)
	FindByIDs(ctx context.Context, ids []uint) ([]*Category, error)

	List(ctx context.Context, page, pageSize int) ([]*Category, int64, error)
	Update(ctx context.Context, category *Category) error

	// Delete 软删除
	Delete(ctx context.Context, id uint) error
}
