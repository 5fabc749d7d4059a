package dto

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	ShippingAddress string `json:"shipping_address" binding:"required,max=255" example:"1 Main St"`
}

// UpdateOrderStatusRequest 修改订单状态（大小写不敏感）
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"PAID"`
}
