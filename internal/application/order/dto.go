package order

import (
	"time"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	UserID          uint // 从JWT中提取
	ShippingAddress string
}

// OrderDetail 订单详情(含明细)
type OrderDetail struct {
	ID              uint                `json:"id"`
	OrderNo         string              `json:"order_no"`
	UserID          uint                `json:"user_id"`
	Status          string              `json:"status"`
	OrderDate       time.Time           `json:"order_date"`
	ShippingAddress string              `json:"shipping_address"`
	Total           string              `json:"total"`
	OrderItems      []OrderItemResponse `json:"order_items"`
}

// OrderItemResponse 订单明细
// Price为下单时的行金额(单价×数量)
type OrderItemResponse struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderSummary 订单摘要(不含明细)，状态变更后返回
type OrderSummary struct {
	ID        uint      `json:"id"`
	OrderNo   string    `json:"order_no"`
	UserID    uint      `json:"user_id"`
	Status    string    `json:"status"`
	OrderDate time.Time `json:"order_date"`
	Total     string    `json:"total"`
}

// OrderPage 分页订单
type OrderPage struct {
	Orders   []*OrderDetail
	Total    int64
	Page     int
	PageSize int
}

func toOrderDetail(o *order.Order) *OrderDetail {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		items = append(items, toOrderItemResponse(&o.Items[i]))
	}
	return &OrderDetail{
		ID:              o.ID,
		OrderNo:         o.OrderNo,
		UserID:          o.UserID,
		Status:          string(o.Status),
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		Total:           o.Total.StringFixed(2),
		OrderItems:      items,
	}
}

func toOrderItemResponse(item *order.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:        item.ID,
		BookID:    item.BookID,
		BookTitle: item.BookTitle,
		Quantity:  item.Quantity,
		Price:     item.Price.StringFixed(2),
	}
}

func toOrderSummary(o *order.Order) *OrderSummary {
	return &OrderSummary{
		ID:        o.ID,
		OrderNo:   o.OrderNo,
		UserID:    o.UserID,
		Status:    string(o.Status),
		OrderDate: o.OrderDate,
		Total:     o.Total.StringFixed(2),
	}
}
