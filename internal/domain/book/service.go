package book

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var nonDigit = regexp.MustCompile(`[^0-9X]`)

// CreateParams 创建图书参数
type CreateParams struct {
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// UpdateParams 更新图书参数
// ISBN非空且与原值不同时拒绝修改;Price为nil表示不修改;CategoryIDs为nil表示不修改
type UpdateParams struct {
	Title       string
	Author      string
	ISBN        string
	Price       *decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// Service 图书领域服务接口
// 写操作的权限(管理员)由应用层检查
type Service interface {
	// PublishBook 创建图书
	// 业务规则:
	// - 书名、作者必填
	// - ISBN格式必须合法(10位或13位)且不能重复
	// - 价格>=0
	PublishBook(ctx context.Context, params CreateParams) (*Book, error)

	// PublishBooks 批量创建，任何一本校验失败则整体失败
	PublishBooks(ctx context.Context, params []CreateParams) ([]*Book, error)

	// GetBookByID 根据ID获取图书详情
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBook 更新图书
	UpdateBook(ctx context.Context, id uint, params UpdateParams) (*Book, error)

	// DeleteBook 删除图书(软删除)
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error)

	// SearchBooks 条件搜索
	SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// PublishBook 创建图书
func (s *service) PublishBook(ctx context.Context, p CreateParams) (*Book, error) {
	b, err := s.newValidatedBook(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// PublishBooks 批量创建
func (s *service) PublishBooks(ctx context.Context, params []CreateParams) ([]*Book, error) {
	books := make([]*Book, 0, len(params))
	seen := make(map[string]struct{}, len(params))
	for _, p := range params {
		b, err := s.newValidatedBook(ctx, p)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[b.ISBN]; dup {
			return nil, ErrISBNDuplicate.WithMessagef("ISBN号重复: %s", b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
		books = append(books, b)
	}

	if err := s.repo.SaveAll(ctx, books); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBook 更新图书
func (s *service) UpdateBook(ctx context.Context, id uint, p UpdateParams) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.ISBN != "" && normalizeISBN(p.ISBN) != b.ISBN {
		return nil, ErrISBNImmutable
	}

	if p.Price != nil {
		if err := b.UpdatePrice(*p.Price); err != nil {
			return nil, err
		}
	}
	b.UpdateInfo(p.Title, p.Author, p.Description, p.CoverImage)
	if p.CategoryIDs != nil {
		b.ReplaceCategories(p.CategoryIDs)
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	return s.repo.List(ctx, params)
}

// SearchBooks 条件搜索，ISBN条件先做规范化
func (s *service) SearchBooks(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	if len(params.ISBNs) > 0 {
		isbns := make([]string, 0, len(params.ISBNs))
		for _, isbn := range params.ISBNs {
			isbns = append(isbns, normalizeISBN(isbn))
		}
		params.ISBNs = isbns
	}
	return s.repo.Search(ctx, params)
}

func (s *service) newValidatedBook(ctx context.Context, p CreateParams) (*Book, error) {
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.Author) == "" {
		return nil, ErrInvalidTitle
	}

	isbn := normalizeISBN(p.ISBN)
	if !isValidISBN(isbn) {
		return nil, ErrInvalidISBN
	}

	if p.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	existing, err := s.repo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, ErrISBNDuplicate
	}
	if err != nil && !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	return NewBook(p.Title, p.Author, isbn, p.Price, p.Description, p.CoverImage, p.CategoryIDs), nil
}

// normalizeISBN 去除分隔符(如978-7-115-42802-8 → 9787115428028)
func normalizeISBN(isbn string) string {
	return nonDigit.ReplaceAllString(strings.ToUpper(isbn), "")
}

// isValidISBN 校验ISBN格式
// ISBN-10末位允许X;简化实现，不校验校验位
func isValidISBN(isbn string) bool {
	switch len(isbn) {
	case 13:
		return !strings.Contains(isbn, "X")
	case 10:
		return !strings.Contains(isbn[:9], "X")
	default:
		return false
	}
}
