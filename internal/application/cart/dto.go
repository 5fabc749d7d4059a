package cart

import (
	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/cart"
)

// CartResponse 购物车
type CartResponse struct {
	ID        uint               `json:"id"`
	UserID    uint               `json:"user_id"`
	CartItems []CartItemResponse `json:"cart_items"`
}

// CartItemResponse 购物车明细
type CartItemResponse struct {
	ID        uint   `json:"id"`
	BookID    uint   `json:"book_id"`
	BookTitle string `json:"book_title,omitempty"`
	Quantity  int    `json:"quantity"`
}

// AddItemRequest 加购请求
type AddItemRequest struct {
	BookID   uint
	Quantity int
}

func toCartResponse(c *cart.ShoppingCart) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for i := range c.Items {
		items = append(items, toCartItemResponse(&c.Items[i]))
	}
	return &CartResponse{ID: c.ID, UserID: c.UserID, CartItems: items}
}

func toCartItemResponse(item *cart.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:        item.ID,
		BookID:    item.BookID,
		BookTitle: item.BookTitle,
		Quantity:  item.Quantity,
	}
}
