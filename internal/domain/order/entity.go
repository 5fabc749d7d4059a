package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/book"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
)

// Order 订单实体(聚合根)
// DDD设计说明:
// 1. Order是聚合根，OrderItem是子实体，每次结算创建且只创建一次
// 2. 创建后只有Status可以变化，UserID/Items/Total永不修改
// 3. Total冗余存储，创建时由明细价格求和，之后不再重算
type Order struct {
	ID              uint
	OrderNo         string // 订单号(业务主键)
	UserID          uint
	UserEmail       string // 仅FindWithItemsAndOwner填充
	Status          Status
	OrderDate       time.Time
	ShippingAddress string
	Total           decimal.Decimal
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem 订单明细
// Price = 下单时单价 × 数量，是永久的历史快照，与之后的图书改价无关
type OrderItem struct {
	ID        uint
	OrderID   uint
	BookID    uint
	BookTitle string
	Quantity  int
	Price     decimal.Decimal
}

// NewOrderFromCart 由购物车快照生成新订单(工厂方法)
// 1. 每个购物车明细对应一个订单明细，保留图书和数量，价格按当前图书价格重新计算
// 2. 空购物车生成零明细、零金额的订单(允许)
// 3. 明细引用的图书已被删除时返回ErrBookNotFound
func NewOrderFromCart(userID uint, shippingAddress string, c *cart.ShoppingCart, now time.Time) (*Order, error) {
	items := make([]OrderItem, 0, len(c.Items))
	for _, ci := range c.Items {
		if !ci.BookAvailable {
			return nil, book.ErrBookNotFound.WithMessagef("图书不存在: %d", ci.BookID)
		}
		items = append(items, OrderItem{
			BookID:    ci.BookID,
			BookTitle: ci.BookTitle,
			Quantity:  ci.Quantity,
			Price:     LineTotal(ci.BookPrice, ci.Quantity),
		})
	}

	return &Order{
		OrderNo:         GenerateOrderNo(now),
		UserID:          userID,
		Status:          StatusNew,
		OrderDate:       now,
		ShippingAddress: shippingAddress,
		Total:           OrderTotal(items),
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}

// FindItem 在已加载的明细中查找
func (o *Order) FindItem(itemID uint) (*OrderItem, error) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i], nil
		}
	}
	return nil, ErrOrderItemNotFound.WithMessagef("订单%d中不存在明细: %d", o.ID, itemID)
}
