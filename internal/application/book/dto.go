package book

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
)

// PublishBookRequest 上架请求
type PublishBookRequest struct {
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// UpdateBookRequest 更新请求
// Price、CategoryIDs为nil表示不修改
type UpdateBookRequest struct {
	Title       string
	Author      string
	ISBN        string
	Price       *decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
}

// BookResponse 图书
type BookResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	ISBN        string    `json:"isbn"`
	Price       string    `json:"price"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image,omitempty"`
	CategoryIDs []uint    `json:"category_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookPage 分页结果
type BookPage struct {
	Books    []*BookResponse
	Total    int64
	Page     int
	PageSize int
}

func toBookResponse(b *book.Book) *BookResponse {
	ids := b.CategoryIDs
	if ids == nil {
		ids = []uint{}
	}
	return &BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		ISBN:        b.ISBN,
		Price:       b.Price.StringFixed(2),
		Description: b.Description,
		CoverImage:  b.CoverImage,
		CategoryIDs: ids,
		CreatedAt:   b.CreatedAt,
	}
}

// NewBookPage 领域实体 → 分页DTO
func NewBookPage(books []*book.Book, total int64, page, pageSize int) *BookPage {
	list := make([]*BookResponse, 0, len(books))
	for _, b := range books {
		list = append(list, toBookResponse(b))
	}
	return &BookPage{Books: list, Total: total, Page: page, PageSize: pageSize}
}

func (r PublishBookRequest) params() book.CreateParams {
	return book.CreateParams{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Price:       r.Price,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		CategoryIDs: r.CategoryIDs,
	}
}
