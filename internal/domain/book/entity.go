package book

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. ISBN作为业务唯一标识，创建后不可修改(数据库层保证唯一性)
// 2. 价格使用decimal，非负，数据库存储为decimal(10,2)
// 3. 删除为软删除，读取和搜索都透明地排除已删除图书
type Book struct {
	ID          uint
	Title       string
	Author      string
	ISBN        string
	Price       decimal.Decimal
	Description string
	CoverImage  string
	CategoryIDs []uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
// 调用方负责先校验ISBN与价格
func NewBook(title, author, isbn string, price decimal.Decimal, description, coverImage string, categoryIDs []uint) *Book {
	now := time.Now()
	return &Book{
		Title:       title,
		Author:      author,
		ISBN:        isbn,
		Price:       price,
		Description: description,
		CoverImage:  coverImage,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UpdatePrice 更新价格
// 业务规则:价格不能为负数。已下单的订单明细不受影响(价格快照)
func (b *Book) UpdatePrice(newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return ErrInvalidPrice
	}
	b.Price = newPrice
	b.UpdatedAt = time.Now()
	return nil
}

// UpdateInfo 更新图书基本信息，空值表示不修改
func (b *Book) UpdateInfo(title, author, description, coverImage string) {
	if title != "" {
		b.Title = title
	}
	if author != "" {
		b.Author = author
	}
	if description != "" {
		b.Description = description
	}
	if coverImage != "" {
		b.CoverImage = coverImage
	}
	b.UpdatedAt = time.Now()
}

// ReplaceCategories 替换分类集合
func (b *Book) ReplaceCategories(categoryIDs []uint) {
	b.CategoryIDs = categoryIDs
	b.UpdatedAt = time.Now()
}
