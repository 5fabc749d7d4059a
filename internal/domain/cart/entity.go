package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingCart 购物车(聚合根)
// DDD设计说明:
// 1. 每个用户最多一个购物车(shopping_carts.user_id唯一索引)
// 2. 首次访问或首次加购时惰性创建，下单后清空但购物车本身保留
// 3. Version用于乐观并发控制，每次明细变更都会递增
type ShoppingCart struct {
	ID        uint
	UserID    uint
	Version   int64
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem 购物车明细
// BookTitle/BookPrice在读取时从图书表加载，下单时用于定价
// BookAvailable为false表示图书已被软删除
type CartItem struct {
	ID            uint
	CartID        uint
	BookID        uint
	BookTitle     string
	BookPrice     decimal.Decimal
	BookAvailable bool
	Quantity      int
}

// NewShoppingCart 创建空购物车
func NewShoppingCart(userID uint) *ShoppingCart {
	now := time.Now()
	return &ShoppingCart{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCartItem 创建购物车明细，数量必须为正
func NewCartItem(cartID, bookID uint, quantity int) (*CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &CartItem{CartID: cartID, BookID: bookID, Quantity: quantity}, nil
}

// ChangeQuantity 修改数量，数量必须为正
func (i *CartItem) ChangeQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i.Quantity = quantity
	return nil
}

// IsEmpty 购物车是否为空
func (c *ShoppingCart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Owns 明细是否属于该购物车
func (c *ShoppingCart) Owns(item *CartItem) bool {
	return item != nil && item.CartID == c.ID
}
