package dto

import (
	"github.com/shopspring/decimal"
)

// PublishBookRequest 上架请求
// 价格接受数字或字符串（"19.99"），按decimal精确解析
type PublishBookRequest struct {
	Title       string           `json:"title" binding:"required,max=200" example:"Dune"`
	Author      string           `json:"author" binding:"required,max=100" example:"Frank Herbert"`
	ISBN        string           `json:"isbn" binding:"required" example:"9780441172719"`
	Price       *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"19.99"`
	Description string           `json:"description" binding:"max=5000"`
	CoverImage  string           `json:"cover_image" binding:"omitempty,url,max=500"`
	CategoryIDs []uint           `json:"category_ids"`
}

// UpdateBookRequest 更新请求，未出现的字段保持不变
type UpdateBookRequest struct {
	Title       string           `json:"title" binding:"max=200"`
	Author      string           `json:"author" binding:"max=100"`
	ISBN        string           `json:"isbn"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	Description string           `json:"description" binding:"max=5000"`
	CoverImage  string           `json:"cover_image" binding:"omitempty,url,max=500"`
	CategoryIDs []uint           `json:"category_ids"`
}

// ListBooksRequest 图书列表
type ListBooksRequest struct {
	PageQuery
	Keyword string `form:"keyword" binding:"omitempty,max=100"`
	SortBy  string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc"`
}

// SearchBooksRequest 条件搜索，同一参数可重复出现（?authors=a&authors=b）
type SearchBooksRequest struct {
	PageQuery
	Titles   []string `form:"titles"`
	Authors  []string `form:"authors"`
	ISBNs    []string `form:"isbns"`
	MinPrice string   `form:"min_price" binding:"omitempty,numeric"`
	MaxPrice string   `form:"max_price" binding:"omitempty,numeric"`
}
