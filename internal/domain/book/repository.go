package book

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 图书仓储接口(依赖倒置原则)
// 所有查询都排除已软删除的图书
type Repository interface {
	// Create 创建图书(连同分类关联)，ISBN重复返回ErrISBNDuplicate
	Create(ctx context.Context, book *Book) error

	// SaveAll 批量创建图书，在同一个事务中执行
	SaveAll(ctx context.Context, books []*Book) error

	// FindByID 根据ID查找图书，不存在或已删除返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByISBN 根据ISBN查找图书
	FindByISBN(ctx context.Context, isbn string) (*Book, error)

	// Update 更新图书信息与分类关联
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书(软删除)
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表
	List(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// Search 按条件搜索(各条件之间为AND，同一条件内为IN)
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)

	// ListByCategoryID 查询某分类下的图书
	ListByCategoryID(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error)
}

// ListParams 列表查询参数
type ListParams struct {
	Page     int    // 页码(从1开始)
	PageSize int    // 每页数量
	Keyword  string // 搜索关键词(标题、作者)
	SortBy   string // 排序字段(price_asc, price_desc, created_at_desc)
}

// SearchParams 搜索参数
// 空切片表示不限制该条件
type SearchParams struct {
	Titles   []string
	Authors  []string
	ISBNs    []string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	PageSize int
}
