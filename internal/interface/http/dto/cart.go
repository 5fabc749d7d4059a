package dto

// AddCartItemRequest 加入购物车
type AddCartItemRequest struct {
	BookID   uint `json:"book_id" binding:"required" example:"1"`
	Quantity int  `json:"quantity" binding:"required" example:"2"`
}

// UpdateCartItemRequest 修改数量
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required" example:"3"`
}
